package service

import (
	"ChatVault/internal/attachment"
	"ChatVault/internal/model"
	"ChatVault/internal/repo"
	"ChatVault/internal/resolver"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Options задают политику сервиса.
type Options struct {
	// RequireValue включает политику "обязательны name и value".
	RequireValue bool
	// MaxAttachmentBytes ограничивает размер вложения; 0 — без ограничения.
	MaxAttachmentBytes int64
	// Thumbnailer строит превью PDF; по умолчанию attachment.PDFThumbnailer.
	Thumbnailer attachment.Thumbnailer
}

// Vault — интерфейс ядра для слоя представления: CRUD, поиск по чату,
// импорт/экспорт и ленивое превью PDF.
//
// Все изменения сериализуются одним мьютексом, который держится и на время
// записи, и на время обновления зеркала: когда метод вернул управление,
// зеркало совпадает с хранилищем.
type Vault struct {
	mu       sync.Mutex
	repo     repo.DocumentRepository
	mirror   *Mirror
	resolver *resolver.Resolver
	thumbs   attachment.Thumbnailer
	opts     Options
	logger   *zap.SugaredLogger
}

func NewVault(r repo.DocumentRepository, logger *zap.SugaredLogger, opts Options) *Vault {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	thumbs := opts.Thumbnailer
	if thumbs == nil {
		thumbs = attachment.PDFThumbnailer{Scale: attachment.DefaultThumbScale}
	}
	m := NewMirror(r)
	return &Vault{
		repo:     r,
		mirror:   m,
		resolver: resolver.New(m),
		thumbs:   thumbs,
		opts:     opts,
		logger:   logger,
	}
}

// Open загружает зеркало из хранилища.
func (v *Vault) Open(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.mirror.Refresh(ctx); err != nil {
		return fmt.Errorf("load vault: %w", err)
	}
	v.logger.Infow("vault loaded", "documents", v.mirror.Len())
	return nil
}

// Mirror возвращает зеркало коллекции.
func (v *Vault) Mirror() *Mirror { return v.mirror }

// List возвращает все документы в порядке хранилища.
func (v *Vault) List() []model.Document { return v.mirror.Current() }

// Resolve классифицирует строку чата и ищет документы. Не возвращает ошибок.
func (v *Vault) Resolve(text string) resolver.Result {
	return v.resolver.Resolve(text)
}

// Get читает документ из хранилища.
func (v *Vault) Get(ctx context.Context, id int64) (model.Document, bool, error) {
	return v.repo.Get(ctx, id)
}

// Add проверяет и сохраняет новый документ.
func (v *Vault) Add(ctx context.Context, doc model.Document) (model.Document, error) {
	doc = doc.Clone()
	doc.Name = strings.TrimSpace(doc.Name)
	if err := v.validate(doc.Name, doc.Value, doc.File); err != nil {
		return model.Document{}, err
	}
	// превью всегда строится заново по сохранённому файлу
	doc.PdfThumb = ""

	var saved model.Document
	err := v.mutate(ctx, "add", func() error {
		id, err := v.repo.Add(ctx, doc)
		if err != nil {
			return err
		}
		saved = doc.Clone()
		saved.ID = id
		return nil
	})
	if err != nil {
		return model.Document{}, err
	}
	v.logger.Infow("document added", "id", saved.ID, "name", saved.Name, "kind", kindOf(saved))
	return saved, nil
}

// Update накладывает частичное обновление. Пропущенные поля, включая файл, сохраняются.
func (v *Vault) Update(ctx context.Context, id int64, upd model.DocumentUpdate) (model.Document, error) {
	if upd.Empty() {
		return model.Document{}, fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		upd.Name = &name
		if name == "" {
			return model.Document{}, fmt.Errorf("%w: name is required", ErrValidation)
		}
	}
	if upd.Value != nil && v.opts.RequireValue && strings.TrimSpace(*upd.Value) == "" {
		return model.Document{}, fmt.Errorf("%w: value is required", ErrValidation)
	}
	if upd.File != nil {
		f := *upd.File
		upd.File = &f
		if err := v.validateFile(upd.File); err != nil {
			return model.Document{}, err
		}
	}

	var merged model.Document
	err := v.mutate(ctx, "update", func() error {
		var err error
		merged, err = v.repo.Update(ctx, id, upd)
		return err
	})
	if err != nil {
		return model.Document{}, err
	}
	v.logger.Infow("document updated", "id", id)
	return merged, nil
}

// Delete удаляет документ; отсутствующий id не ошибка.
func (v *Vault) Delete(ctx context.Context, id int64) error {
	err := v.mutate(ctx, "delete", func() error {
		return v.repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	v.logger.Infow("document deleted", "id", id)
	return nil
}

// Clear удаляет все документы.
func (v *Vault) Clear(ctx context.Context) error {
	err := v.mutate(ctx, "clear", func() error {
		return v.repo.Clear(ctx)
	})
	if err != nil {
		return err
	}
	v.logger.Infow("vault cleared")
	return nil
}

// Import добавляет записи из JSON-массива. Либо добавляются все, либо ни одной.
func (v *Vault) Import(ctx context.Context, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read import: %w", err)
	}
	docs, err := ParseImport(data)
	if err != nil {
		v.logger.Warnw("import rejected", "error", err)
		return 0, err
	}
	var ids []int64
	err = v.mutate(ctx, "import", func() error {
		var err error
		ids, err = v.repo.AddMany(ctx, docs)
		return err
	})
	if err != nil {
		return 0, err
	}
	v.logger.Infow("documents imported", "count", len(ids))
	return len(ids), nil
}

// Export пишет текущую коллекцию в w.
func (v *Vault) Export(w io.Writer) error {
	return WriteExport(w, v.mirror.Current())
}

// EnsureThumbnail возвращает превью PDF, при отсутствии строит его и сохраняет.
func (v *Vault) EnsureThumbnail(ctx context.Context, id int64) (string, error) {
	doc, found, err := v.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("thumbnail: %w", repo.ErrNotFound)
	}
	if doc.PdfThumb != "" {
		return doc.PdfThumb, nil
	}
	if kindOf(doc) != attachment.KindPDF {
		return "", fmt.Errorf("thumbnail: %w", repo.ErrNotPDF)
	}
	_, data, err := attachment.Decode(doc.File.Data)
	if err != nil {
		return "", fmt.Errorf("thumbnail: %w", err)
	}
	thumb, err := v.thumbs.Thumbnail(data)
	if err != nil {
		v.logger.Warnw("thumbnail render failed", "id", id, "error", err)
		return "", fmt.Errorf("thumbnail: %w", err)
	}
	err = v.mutate(ctx, "patch thumbnail", func() error {
		return v.repo.PatchThumb(ctx, id, thumb)
	})
	if err != nil {
		return "", err
	}
	v.logger.Debugw("thumbnail stored", "id", id)
	return thumb, nil
}

// mutate выполняет запись и обновление зеркала под одним мьютексом.
func (v *Vault) mutate(ctx context.Context, op string, write func() error) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := write(); err != nil {
		v.logger.Errorw("vault write failed", "op", op, "error", err)
		return err
	}
	if err := v.mirror.Refresh(ctx); err != nil {
		v.logger.Errorw("vault refresh failed", "op", op, "error", err)
		return fmt.Errorf("%s: refresh: %w", op, err)
	}
	return nil
}

func (v *Vault) validate(name, value string, file *model.Attachment) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if v.opts.RequireValue && strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: value is required", ErrValidation)
	}
	if file != nil {
		return v.validateFile(file)
	}
	return nil
}

func (v *Vault) validateFile(f *model.Attachment) error {
	if !strings.HasPrefix(f.Data, "data:") {
		return fmt.Errorf("%w: file data must be a data URL", ErrValidation)
	}
	if f.Type == "" {
		f.Type = attachment.MediaType(f.Data)
	}
	if limit := v.opts.MaxAttachmentBytes; limit > 0 {
		// размер base64-содержимого примерно 4/3 от исходного
		if int64(len(f.Data))*3/4 > limit {
			return fmt.Errorf("%w: %w", ErrValidation, attachment.ErrTooLarge)
		}
	}
	return nil
}

func kindOf(d model.Document) attachment.Kind {
	if !d.HasFile() {
		return attachment.KindOther
	}
	return attachment.Classify(d.File.Type)
}
