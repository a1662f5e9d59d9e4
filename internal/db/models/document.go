// Package models contains database model definitions.
package models

import "time"

// Document is a stored singleton content document. ID and Type are both the
// document type name, a type can exist at most once.
type Document struct {
	ID        string `gorm:"primaryKey;size:64"`
	Type      string `gorm:"unique;size:64"`
	Body      []byte
	UpdatedAt time.Time
}
