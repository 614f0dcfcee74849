package sqlite

import (
	"context"
	_ "embed"
	"fmt"

	"gorm.io/gorm"
)

// Встроенные SQL-миграции хранилища (SQLite).
//
//go:embed migrations/001_init.sql
var initDDL string

// migration — один шаг схемы; версия хранится в PRAGMA user_version.
type migration struct {
	version int
	apply   func(tx *gorm.DB) error
}

var migrations = []migration{
	{version: 1, apply: func(tx *gorm.DB) error {
		return tx.Exec(initDDL).Error
	}},
	// v2: превью первой страницы PDF
	{version: 2, apply: func(tx *gorm.DB) error {
		if tx.Migrator().HasColumn(&documentRow{}, "pdf_thumb") {
			return nil
		}
		return tx.Migrator().AddColumn(&documentRow{}, "PdfThumb")
	}},
}

// SchemaVersion — версия схемы, до которой доводит Migrate.
func SchemaVersion() int { return migrations[len(migrations)-1].version }

func userVersion(db *gorm.DB) (int, error) {
	var v int
	if err := db.Raw("PRAGMA user_version").Scan(&v).Error; err != nil {
		return 0, err
	}
	return v, nil
}

// migrate применяет недостающие шаги по порядку, каждый в своей транзакции.
// Уже созданная схема не пересоздаётся, данные сохраняются.
func migrate(ctx context.Context, db *gorm.DB) error {
	current, err := userVersion(db.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := m.apply(tx); err != nil {
				return err
			}
			return tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.version)).Error
		})
		if err != nil {
			return fmt.Errorf("migration v%d: %w", m.version, err)
		}
	}
	return nil
}
