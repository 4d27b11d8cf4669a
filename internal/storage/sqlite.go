package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
)

// Compile-time interface check.
var _ domain.KeyValueStore = (*SQLStore)(nil)

// entry is one row of kv_entries.
type entry struct {
	Key       string `gorm:"column:entry_key;primaryKey;size:255"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (entry) TableName() string { return "kv_entries" }

// SQLStore is a key-value store in a SQLite file, through gorm and the
// CGO-free glebarez driver.
type SQLStore struct {
	db  *gorm.DB
	log *logger.Logger
}

// OpenSQLite opens (creating if needed) the database at path and migrates
// the kv_entries table. Use ":memory:" for a throwaway database.
func OpenSQLite(path string, log *logger.Logger) (*SQLStore, error) {
	gl := gormlogger.New(
		newStdLogger(log),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLevel(log.GetLevel()),
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gl})
	if err != nil {
		return nil, fmt.Errorf("storage: open sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}

	log.Info("sqlite store ready at %s", path)
	return &SQLStore{db: db, log: log}, nil
}

// Get returns the value stored under key.
func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	var e entry
	err := s.db.WithContext(ctx).Where("entry_key = ?", key).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Debug("key not found: %s", key)
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: get %s: %w", key, err)
	}
	return e.Value, true, nil
}

// Set upserts value under key.
func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	e := entry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("storage: set %s: %w", key, err)
	}
	s.log.Debug("set %s (%d bytes)", key, len(value))
	return nil
}

// Ping checks the underlying connection. Used by the health endpoint.
func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the database handle.
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func gormLevel(l logger.Level) gormlogger.LogLevel {
	switch l {
	case logger.LevelOff:
		return gormlogger.Silent
	case logger.LevelVerbose:
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// newStdLogger adapts our logger to the Printf shape gorm expects.
func newStdLogger(l *logger.Logger) *log.Logger {
	return log.New(l.Writer(logger.LevelNormal), "gorm: ", 0)
}
