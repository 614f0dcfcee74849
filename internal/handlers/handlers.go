package handlers

import (
	"ChatVault/internal/assets"
	"ChatVault/internal/config"
	"ChatVault/internal/middleware"
	"ChatVault/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	vault *service.Vault,
	logger *zap.SugaredLogger,
	config *config.Config,
	metrics *middleware.Metrics,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	if metrics != nil {
		r.Use(metrics.Handler)
	}

	// Handlers
	docHandler := NewDocumentHandler(vault, logger, config)
	chatHandler := NewChatHandler(vault, logger, metrics)
	transferHandler := NewTransferHandler(vault, logger)
	manifest := assets.Default(config.AssetVersion)

	// Document routes
	r.Route("/api/documents", func(r chi.Router) {
		r.Get("/", docHandler.List)
		r.Post("/", docHandler.Create)
		r.Delete("/", docHandler.Clear)
		r.Get("/{id}", docHandler.Get)
		r.Put("/{id}", docHandler.Update)
		r.Delete("/{id}", docHandler.Delete)
		r.Post("/{id}/thumbnail", docHandler.Thumbnail)
	})

	// Chat / transfer
	r.Post("/api/resolve", chatHandler.Resolve)
	r.Get("/api/export", transferHandler.Export)
	r.Post("/api/import", transferHandler.Import)

	// Offline assets
	r.Get("/api/assets", AssetsHandler(manifest))

	if metrics != nil {
		r.Handle("/metrics", metrics.Exposer())
	}

	return &Handler{Router: r}
}
