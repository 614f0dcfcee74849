package repo

import (
	"ChatVault/internal/model"
	"context"
	"errors"
)

var (
	// ErrNotFound — документа с таким id нет.
	ErrNotFound = errors.New("document not found")
	// ErrStorage — хранилище недоступно или транзакция завершилась ошибкой.
	ErrStorage = errors.New("storage failure")
	// ErrNotPDF — у документа нет PDF-вложения, превью сохранять некуда.
	ErrNotPDF = errors.New("document has no pdf attachment")
)

// DocumentRepository определяет порт доступа к хранилищу документов.
// Каждая операция выполняется в отдельной транзакции: после успешного
// возврата изменение видно всем последующим вызовам.
type DocumentRepository interface {
	// Add сохраняет новый документ и возвращает присвоенный id.
	// Id назначает хранилище, они растут и никогда не переиспользуются.
	Add(ctx context.Context, doc model.Document) (int64, error)

	// AddMany сохраняет пачку документов в одной транзакции: либо все, либо ни одного.
	AddMany(ctx context.Context, docs []model.Document) ([]int64, error)

	// GetAll возвращает все документы в порядке возрастания id.
	GetAll(ctx context.Context) ([]model.Document, error)

	// Get возвращает документ по id; found=false, если его нет.
	Get(ctx context.Context, id int64) (model.Document, bool, error)

	// Update читает документ, накладывает частичное обновление и записывает
	// результат в одной транзакции. Возвращает ErrNotFound, если документа нет.
	Update(ctx context.Context, id int64, upd model.DocumentUpdate) (model.Document, error)

	// Delete удаляет документ; удаление отсутствующего id не ошибка.
	Delete(ctx context.Context, id int64) error

	// Clear удаляет все документы.
	Clear(ctx context.Context) error

	// PatchThumb сохраняет превью первой страницы PDF, не трогая остальные поля.
	PatchThumb(ctx context.Context, id int64, thumb string) error
}
