package handlers

import (
	"ChatVault/internal/service"
	"net/http"

	"go.uber.org/zap"
)

// TransferHandler — резервная копия: экспорт и импорт.
type TransferHandler struct {
	Vault  *service.Vault
	Logger *zap.SugaredLogger
}

func NewTransferHandler(vault *service.Vault, logger *zap.SugaredLogger) *TransferHandler {
	return &TransferHandler{Vault: vault, Logger: logger}
}

type importResponse struct {
	Imported int `json:"imported"`
}

// Export отдаёт всю коллекцию файлом vault_backup.json.
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+service.ExportFileName+`"`)
	if err := h.Vault.Export(w); err != nil {
		h.Logger.Errorw("Export: write failed", "error", err)
	}
}

// Import добавляет документы из тела запроса: всё или ничего.
func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	n, err := h.Vault.Import(r.Context(), r.Body)
	if err != nil {
		writeError(w, h.Logger, "Import", err)
		return
	}
	writeJSON(w, http.StatusOK, importResponse{Imported: n})
}
