package service

import (
	"ChatVault/internal/model"
	"ChatVault/internal/repo"
	"context"
	"sync"
)

// Mirror — копия коллекции документов в памяти, по которой работает резолвер.
// Источник истины — хранилище; Refresh перечитывает его целиком.
type Mirror struct {
	mu   sync.RWMutex
	repo repo.DocumentRepository
	docs []model.Document
}

// NewMirror создаёт пустое зеркало поверх репозитория.
func NewMirror(r repo.DocumentRepository) *Mirror {
	return &Mirror{repo: r}
}

// Refresh перечитывает все документы из хранилища. При ошибке прежний снимок сохраняется.
func (m *Mirror) Refresh(ctx context.Context) error {
	docs, err := m.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.docs = docs
	m.mu.Unlock()
	return nil
}

// Current возвращает копию последнего снимка.
func (m *Mirror) Current() []model.Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Document, len(m.docs))
	for i, d := range m.docs {
		out[i] = d.Clone()
	}
	return out
}

// Len возвращает число документов в снимке.
func (m *Mirror) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}
