package models

// Session is a key value record of the sqlite backed session storage.
// ExpiresAt is a unix timestamp, 0 never expires.
type Session struct {
	ID        string `gorm:"primaryKey;size:128"`
	Value     []byte
	ExpiresAt int64 `gorm:"index"`
}
