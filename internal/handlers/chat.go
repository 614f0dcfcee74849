package handlers

import (
	"ChatVault/internal/middleware"
	"ChatVault/internal/model"
	"ChatVault/internal/service"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// ChatHandler отвечает на строки чата.
type ChatHandler struct {
	Vault   *service.Vault
	Logger  *zap.SugaredLogger
	Metrics *middleware.Metrics
}

func NewChatHandler(vault *service.Vault, logger *zap.SugaredLogger, metrics *middleware.Metrics) *ChatHandler {
	return &ChatHandler{Vault: vault, Logger: logger, Metrics: metrics}
}

type ResolveRequest struct {
	Text string `json:"text"`
}

type MatchDTO struct {
	Position int            `json:"position"`
	Kind     string         `json:"kind"`
	Text     string         `json:"text"`
	Document model.Document `json:"document"`
}

type ResolveResponse struct {
	Intent  string     `json:"intent"`
	Reply   string     `json:"reply,omitempty"`
	Matches []MatchDTO `json:"matches"`
}

// Resolve классифицирует текст и возвращает совпадения.
// Kind подсказывает клиенту: превью картинки, превью PDF или ссылка на скачивание.
func (h *ChatHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Resolve: invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "text is required"})
		return
	}

	res := h.Vault.Resolve(req.Text)
	if h.Metrics != nil {
		h.Metrics.ObserveIntent(res.Intent.String())
	}

	resp := ResolveResponse{
		Intent:  res.Intent.String(),
		Reply:   res.Reply,
		Matches: make([]MatchDTO, 0, len(res.Matches)),
	}
	for _, m := range res.Matches {
		resp.Matches = append(resp.Matches, MatchDTO{
			Position: m.Position,
			Kind:     m.Kind.String(),
			Text:     m.Text,
			Document: m.Document,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
