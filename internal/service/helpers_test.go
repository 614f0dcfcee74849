package service

import (
	"ChatVault/internal/model"
	"ChatVault/internal/repo"
	"ChatVault/internal/repo/sqlite"
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Мок репозитория ---
type mockDocRepo struct{ mock.Mock }

func (m *mockDocRepo) Add(ctx context.Context, doc model.Document) (int64, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockDocRepo) AddMany(ctx context.Context, docs []model.Document) ([]int64, error) {
	args := m.Called(ctx, docs)
	if v, ok := args.Get(0).([]int64); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockDocRepo) GetAll(ctx context.Context) ([]model.Document, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Document); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockDocRepo) Get(ctx context.Context, id int64) (model.Document, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Document), args.Bool(1), args.Error(2)
}
func (m *mockDocRepo) Update(ctx context.Context, id int64, upd model.DocumentUpdate) (model.Document, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(model.Document), args.Error(1)
}
func (m *mockDocRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockDocRepo) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *mockDocRepo) PatchThumb(ctx context.Context, id int64, thumb string) error {
	return m.Called(ctx, id, thumb).Error(0)
}

var _ repo.DocumentRepository = (*mockDocRepo)(nil)

// fakeThumbnailer считает вызовы и возвращает фиксированное превью.
type fakeThumbnailer struct {
	calls atomic.Int32
	err   error
}

func (f *fakeThumbnailer) Thumbnail([]byte) (string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return "", f.err
	}
	return "data:image/png;base64,VEhVTUI=", nil
}

// newSQLiteVault поднимает сервис поверх настоящей SQLite во временном каталоге.
func newSQLiteVault(t *testing.T, opts Options) *Vault {
	t.Helper()
	r, err := sqlite.Open(filepath.Join(t.TempDir(), "vault.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	require.NoError(t, r.Migrate(context.Background()))

	v := NewVault(r, nil, opts)
	require.NoError(t, v.Open(context.Background()))
	return v
}

func strPtr(s string) *string { return &s }

func pdfAttachment() *model.Attachment {
	return &model.Attachment{Name: "scan.pdf", Type: "application/pdf", Data: "data:application/pdf;base64,JVBERi0xLjQ="}
}
