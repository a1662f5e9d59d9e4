// Package gormstore keeps content documents in the application database.
package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lensfolio/lensfolio/internal/content"
	"github.com/lensfolio/lensfolio/internal/db/controller/document"
)

var (
	_ content.Store   = (*Store)(nil)
	_ content.Exister = (*Store)(nil)
)

// Store is a content.Store over the documents table.
type Store struct {
	db *gorm.DB
}

// New creates a Store. The documents table must be migrated.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get returns the stored body of t.
func (s *Store) Get(ctx context.Context, t content.DocumentType) ([]byte, error) {
	doc, err := document.Get(ctx, s.db, string(t))
	if errors.Is(err, document.ErrDocumentNotFound) {
		return nil, content.ErrDocumentNotFound
	}

	if err != nil {
		return nil, err
	}

	return doc.Body, nil
}

// Put replaces the body of t.
func (s *Store) Put(ctx context.Context, t content.DocumentType, body []byte) error {
	_, err := document.Put(ctx, s.db, string(t), body)
	return err
}

// Exists reports whether t is stored.
func (s *Store) Exists(ctx context.Context, t content.DocumentType) (bool, error) {
	return document.Exists(ctx, s.db, string(t))
}
