// Package sessionstore implements fiber.Storage on top of gorm. It backs the
// session storage when lensfolio runs on sqlite; mysql and postgres use the
// gofiber storage drivers.
package sessionstore

import (
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lensfolio/lensfolio/internal/db/models"
)

var _ fiber.Storage = (*Storage)(nil)

// Config for the gorm storage.
type Config struct {
	// GCInterval between expired row sweeps. Default: 10m, <0 disables the sweeper.
	GCInterval time.Duration
}

// Storage is a fiber.Storage persisting into the sessions table.
type Storage struct {
	db   *gorm.DB
	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// New creates the storage and starts the expiry sweeper.
func New(db *gorm.DB, cfg ...Config) *Storage {
	c := Config{GCInterval: 10 * time.Minute} //nolint:mnd
	if len(cfg) > 0 && cfg[0].GCInterval != 0 {
		c.GCInterval = cfg[0].GCInterval
	}

	s := &Storage{db: db, done: make(chan struct{})}

	if c.GCInterval > 0 {
		s.wg.Add(1)

		go s.gc(c.GCInterval)
	}

	return s
}

// Get returns the value for key, nil when absent or expired.
func (s *Storage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}

	var row models.Session

	err := s.db.Where("id = ? AND (expires_at = 0 OR expires_at > ?)", key, time.Now().Unix()).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return row.Value, nil
}

// Set stores val under key. exp 0 never expires.
func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}

	var expiresAt int64
	if exp > 0 {
		expiresAt = time.Now().Add(exp).Unix()
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at"}),
	}).Create(&models.Session{ID: key, Value: val, ExpiresAt: expiresAt}).Error
}

// Delete removes key.
func (s *Storage) Delete(key string) error {
	if key == "" {
		return nil
	}

	return s.db.Where("id = ?", key).Delete(&models.Session{}).Error
}

// Reset removes every key.
func (s *Storage) Reset() error {
	return s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Session{}).Error
}

// Close stops the sweeper. The database handle stays open.
func (s *Storage) Close() error {
	s.once.Do(func() {
		close(s.done)
	})

	s.wg.Wait()

	return nil
}

func (s *Storage) gc(interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			if err := s.sweep(now); err != nil {
				log.Warn().Err(err).Msg("session storage sweep failed")
			}
		}
	}
}

func (s *Storage) sweep(now time.Time) error {
	return s.db.Where("expires_at <> 0 AND expires_at <= ?", now.Unix()).Delete(&models.Session{}).Error
}
