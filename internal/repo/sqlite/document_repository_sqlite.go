package sqlite

import (
	"ChatVault/internal/attachment"
	"ChatVault/internal/model"
	"ChatVault/internal/repo"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// documentRow — строка таблицы documents.
type documentRow struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	Name      string
	Value     string
	Info      string
	FileName  *string
	FileType  *string
	FileData  *string
	PdfThumb  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (documentRow) TableName() string { return "documents" }

func toRow(d model.Document) documentRow {
	row := documentRow{
		ID:        d.ID,
		Name:      d.Name,
		Value:     d.Value,
		Info:      d.Info,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.File != nil {
		name, typ, data := d.File.Name, d.File.Type, d.File.Data
		row.FileName, row.FileType, row.FileData = &name, &typ, &data
	}
	if d.PdfThumb != "" {
		thumb := d.PdfThumb
		row.PdfThumb = &thumb
	}
	return row
}

func fromRow(r documentRow) model.Document {
	d := model.Document{
		ID:        r.ID,
		Name:      r.Name,
		Value:     r.Value,
		Info:      r.Info,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.FileData != nil {
		d.File = &model.Attachment{Name: deref(r.FileName), Type: deref(r.FileType), Data: *r.FileData}
	}
	if r.PdfThumb != nil {
		d.PdfThumb = *r.PdfThumb
	}
	return d
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// DocumentRepositorySQLite — репозиторий документов поверх локального файла SQLite.
type DocumentRepositorySQLite struct {
	db *gorm.DB
}

var _ repo.DocumentRepository = (*DocumentRepositorySQLite)(nil)

// DefaultPath возвращает путь к БД по умолчанию в каталоге конфигурации пользователя.
func DefaultPath() (string, error) {
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, "ChatVault", "vault.sqlite"), nil
}

// Open открывает (и создаёт при необходимости) файл БД. Схему готовит Migrate.
func Open(path string) (*DocumentRepositorySQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("open store: %w: empty database path", repo.ErrStorage)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("open store: %w: %w", repo.ErrStorage, err)
	}
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: path}
	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open store: %w: %w", repo.ErrStorage, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open store: %w: %w", repo.ErrStorage, err)
	}
	// SQLite пишет одним соединением
	sqlDB.SetMaxOpenConns(1)
	return &DocumentRepositorySQLite{db: db}, nil
}

// Migrate доводит схему до актуальной версии.
func (r *DocumentRepositorySQLite) Migrate(ctx context.Context) error {
	if err := migrate(ctx, r.db); err != nil {
		return fmt.Errorf("migrate store: %w: %w", repo.ErrStorage, err)
	}
	return nil
}

// Close закрывает соединение с БД.
func (r *DocumentRepositorySQLite) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// write выполняет fn в транзакции. Начатая транзакция доводится до конца
// даже при отмене ctx, чтобы не оставлять частичных записей.
func (r *DocumentRepositorySQLite) write(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(context.WithoutCancel(ctx)).Transaction(fn)
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repo.ErrNotFound) || errors.Is(err, repo.ErrNotPDF) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, repo.ErrStorage, err)
}

// Add сохраняет новый документ и возвращает присвоенный id.
func (r *DocumentRepositorySQLite) Add(ctx context.Context, doc model.Document) (int64, error) {
	ids, err := r.AddMany(ctx, []model.Document{doc})
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

// AddMany сохраняет документы одной транзакцией.
func (r *DocumentRepositorySQLite) AddMany(ctx context.Context, docs []model.Document) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrap("add documents", err)
	}
	ids := make([]int64, 0, len(docs))
	err := r.write(ctx, func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for _, d := range docs {
			row := toRow(d)
			row.ID = 0
			row.CreatedAt, row.UpdatedAt = now, now
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			ids = append(ids, row.ID)
		}
		return nil
	})
	if err != nil {
		return nil, wrap("add documents", err)
	}
	return ids, nil
}

// GetAll возвращает все документы в порядке возрастания id.
func (r *DocumentRepositorySQLite) GetAll(ctx context.Context) ([]model.Document, error) {
	var rows []documentRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, wrap("list documents", err)
	}
	docs := make([]model.Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, fromRow(row))
	}
	return docs, nil
}

// Get возвращает документ по id.
func (r *DocumentRepositorySQLite) Get(ctx context.Context, id int64) (model.Document, bool, error) {
	var row documentRow
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Document{}, false, nil
	}
	if err != nil {
		return model.Document{}, false, wrap("get document", err)
	}
	return fromRow(row), true, nil
}

// Update выполняет read-merge-write одной транзакцией, сохраняя created_at.
func (r *DocumentRepositorySQLite) Update(ctx context.Context, id int64, upd model.DocumentUpdate) (model.Document, error) {
	var merged model.Document
	err := r.write(ctx, func(tx *gorm.DB) error {
		var cur documentRow
		err := tx.Where("id = ?", id).Take(&cur).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repo.ErrNotFound
		}
		if err != nil {
			return err
		}
		merged = fromRow(cur).Apply(upd)
		merged.UpdatedAt = time.Now().UTC()
		row := toRow(merged)
		return tx.Model(&documentRow{}).Where("id = ?", id).Updates(map[string]any{
			"name":       row.Name,
			"value":      row.Value,
			"info":       row.Info,
			"file_name":  row.FileName,
			"file_type":  row.FileType,
			"file_data":  row.FileData,
			"pdf_thumb":  row.PdfThumb,
			"updated_at": row.UpdatedAt,
		}).Error
	})
	if err != nil {
		return model.Document{}, wrap("update document", err)
	}
	return merged, nil
}

// Delete удаляет документ по id. Отсутствующий id не ошибка.
func (r *DocumentRepositorySQLite) Delete(ctx context.Context, id int64) error {
	err := r.write(ctx, func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Delete(&documentRow{}).Error
	})
	return wrap("delete document", err)
}

// Clear удаляет все документы. Счётчик id не сбрасывается.
func (r *DocumentRepositorySQLite) Clear(ctx context.Context) error {
	err := r.write(ctx, func(tx *gorm.DB) error {
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&documentRow{}).Error
	})
	return wrap("clear documents", err)
}

// PatchThumb сохраняет превью PDF. Документ должен существовать и иметь PDF-вложение.
func (r *DocumentRepositorySQLite) PatchThumb(ctx context.Context, id int64, thumb string) error {
	err := r.write(ctx, func(tx *gorm.DB) error {
		var row documentRow
		err := tx.Select("id", "file_type", "file_data").Where("id = ?", id).Take(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repo.ErrNotFound
		}
		if err != nil {
			return err
		}
		if row.FileData == nil || attachment.Classify(deref(row.FileType)) != attachment.KindPDF {
			return repo.ErrNotPDF
		}
		return tx.Model(&documentRow{}).Where("id = ?", id).UpdateColumn("pdf_thumb", thumb).Error
	})
	return wrap("patch thumbnail", err)
}
