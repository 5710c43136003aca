package storage

import (
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Record is one persisted key-value pair.
type Record struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// SQLite persists storage keys in a local database file, the process-level
// stand-in for the browser's key-value storage.
type SQLite struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the storage file and migrates the record table.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) GetItem(key string) (string, bool, error) {
	var rec Record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return rec.Value, true, nil
}

func (s *SQLite) SetItem(key, value string) error {
	rec := Record{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
}

func (s *SQLite) RemoveItem(key string) error {
	return s.db.Delete(&Record{}, "key = ?", key).Error
}
