package content_test

import (
	"context"
	"errors"
	"sync"

	"github.com/lensfolio/lensfolio/internal/content"
)

// memStore is an in-memory content.Store recording writes.
type memStore struct {
	mu     sync.Mutex
	docs   map[content.DocumentType][]byte
	puts   []content.DocumentType
	getErr error
	putErr error
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[content.DocumentType][]byte)}
}

func (m *memStore) Get(_ context.Context, t content.DocumentType) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getErr != nil {
		return nil, m.getErr
	}

	body, ok := m.docs[t]
	if !ok {
		return nil, content.ErrDocumentNotFound
	}

	return body, nil
}

func (m *memStore) Put(_ context.Context, t content.DocumentType, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.putErr != nil {
		return m.putErr
	}

	m.docs[t] = append([]byte(nil), body...)
	m.puts = append(m.puts, t)

	return nil
}

var errBackend = errors.New("backend unavailable")
