// Package document reads and writes stored singleton documents.
package document

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lensfolio/lensfolio/internal/db/models"
)

const (
	idQueryPattern = "id = ?"
)

var (
	// ErrDocumentNotFound is returned when a document is not found.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrDocumentIDEmpty is returned when a document id is empty.
	ErrDocumentIDEmpty = errors.New("document id cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a document by its id.
func Get(ctx context.Context, db *gorm.DB, id string) (*models.Document, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if id == "" {
		return nil, ErrDocumentIDEmpty
	}

	var doc models.Document

	result := db.WithContext(ctx).Where(idQueryPattern, id).First(&doc)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}

		return nil, result.Error
	}

	return &doc, nil
}

// Put creates or replaces the document with the given id. The whole body is
// replaced, a second writer wins.
func Put(ctx context.Context, db *gorm.DB, id string, body []byte) (*models.Document, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if id == "" {
		return nil, ErrDocumentIDEmpty
	}

	doc := &models.Document{
		ID:        id,
		Type:      id,
		Body:      body,
		UpdatedAt: time.Now().UTC(),
	}

	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(doc)
	if result.Error != nil {
		return nil, result.Error
	}

	return doc, nil
}

// Exists reports whether a document with the given id is stored.
func Exists(ctx context.Context, db *gorm.DB, id string) (bool, error) {
	if db == nil {
		return false, ErrDBNil
	}

	if id == "" {
		return false, ErrDocumentIDEmpty
	}

	var count int64
	if err := db.WithContext(ctx).Model(&models.Document{}).Where(idQueryPattern, id).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
