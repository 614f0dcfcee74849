package handlers

import (
	"ChatVault/internal/assets"
	"net/http"
)

// AssetsHandler отдаёт манифест офлайн-ресурсов.
func AssetsHandler(m assets.Manifest) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m)
	}
}
