package bootstrap

import (
	"context"
	"fmt"

	"ChatVault/internal/config"
	reposqlite "ChatVault/internal/repo/sqlite"
	"ChatVault/internal/service"

	"go.uber.org/zap"
)

// OpenVault открывает хранилище по пути из конфигурации (или по пути по умолчанию),
// выполняет миграции, загружает зеркало и возвращает (vault, cleanup, error).
// cleanup необходимо вызвать после окончания работы, чтобы закрыть соединение с БД.
func OpenVault(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger) (*service.Vault, func() error, error) {
	path := cfg.DBPath
	if path == "" {
		p, err := reposqlite.DefaultPath()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve db path: %w", err)
		}
		path = p
	}
	r, err := reposqlite.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if err := r.Migrate(ctx); err != nil {
		_ = r.Close()
		return nil, nil, err
	}
	v := service.NewVault(r, logger, service.Options{
		RequireValue:       cfg.RequireValue,
		MaxAttachmentBytes: cfg.MaxAttachmentBytes(),
	})
	if err := v.Open(ctx); err != nil {
		_ = r.Close()
		return nil, nil, err
	}
	cleanup := func() error { return r.Close() }
	return v, cleanup, nil
}
