package handlers

import (
	"ChatVault/internal/config"
	"ChatVault/internal/model"
	"ChatVault/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// DocumentHandler — CRUD документов.
type DocumentHandler struct {
	Vault  *service.Vault
	Logger *zap.SugaredLogger
	Config *config.Config
}

// NewDocumentHandler создаёт хендлер документов
func NewDocumentHandler(vault *service.Vault, logger *zap.SugaredLogger, cfg *config.Config) *DocumentHandler {
	return &DocumentHandler{Vault: vault, Logger: logger, Config: cfg}
}

// CreateRequest — новый документ.
type CreateRequest struct {
	Name  string            `json:"name"`
	Value string            `json:"value"`
	Info  string            `json:"info"`
	File  *model.Attachment `json:"file"`
}

// UpdateRequest — частичное обновление; отсутствующие поля не меняются.
type UpdateRequest struct {
	Name       *string           `json:"name,omitempty"`
	Value      *string           `json:"value,omitempty"`
	Info       *string           `json:"info,omitempty"`
	File       *model.Attachment `json:"file,omitempty"`
	RemoveFile bool              `json:"removeFile,omitempty"`
}

type thumbnailResponse struct {
	ID       int64  `json:"id"`
	PdfThumb string `json:"pdfThumb"`
}

// List отдаёт все документы в порядке хранилища.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Vault.List())
}

// Create добавляет документ.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request"})
		return
	}
	doc, err := h.Vault.Add(r.Context(), model.Document{
		Name:  req.Name,
		Value: req.Value,
		Info:  req.Info,
		File:  req.File,
	})
	if err != nil {
		writeError(w, h.Logger, "Create", err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

// Get отдаёт документ по id.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	doc, found, err := h.Vault.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.Logger, "Get", err)
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "document not found"})
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Update частично обновляет документ.
func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request"})
		return
	}
	doc, err := h.Vault.Update(r.Context(), id, model.DocumentUpdate{
		Name:       req.Name,
		Value:      req.Value,
		Info:       req.Info,
		File:       req.File,
		RemoveFile: req.RemoveFile,
	})
	if err != nil {
		writeError(w, h.Logger, "Update", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Delete удаляет документ; повторное удаление тоже 204.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	if err := h.Vault.Delete(r.Context(), id); err != nil {
		writeError(w, h.Logger, "Delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear удаляет все документы.
func (h *DocumentHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Vault.Clear(r.Context()); err != nil {
		writeError(w, h.Logger, "Clear", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Thumbnail строит (или берёт сохранённое) превью PDF.
func (h *DocumentHandler) Thumbnail(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	thumb, err := h.Vault.EnsureThumbnail(r.Context(), id)
	if err != nil {
		writeError(w, h.Logger, "Thumbnail", err)
		return
	}
	writeJSON(w, http.StatusOK, thumbnailResponse{ID: id, PdfThumb: thumb})
}
