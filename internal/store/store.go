package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Namespaced blob keys. The key set is part of the on-disk contract:
// records written under these keys by earlier versions must keep loading.
const (
	KeyTerms      = "huntboard-terms"
	KeyActiveTerm = "huntboard-active-term"
	KeyApps       = "huntboard-apps"
	KeySort       = "huntboard-sort"
)

const (
	dataDirName  = ".huntboard"
	dataFileName = "huntboard.db"
)

// Blob is one namespaced key with a JSON value.
type Blob struct {
	Key   string         `gorm:"primaryKey"`
	Value datatypes.JSON `gorm:"not null"`
}

// Store is durable key -> JSON blob storage backed by a local SQLite file.
type Store struct {
	db *gorm.DB
}

// DefaultPath returns the database path (~/.huntboard/huntboard.db),
// honoring the HUNTBOARD_DB override.
func DefaultPath() (string, error) {
	if p := os.Getenv("HUNTBOARD_DB"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dataDirName, dataFileName), nil
}

// Open opens (creating if needed) the blob database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Load reads the JSON value stored under key. The second return value is
// false when the key is absent.
func (s *Store) Load(key string) (json.RawMessage, bool, error) {
	var blob Blob
	err := s.db.First(&blob, "key = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return json.RawMessage(blob.Value), true, nil
}

// Save marshals value and writes it under key, replacing any previous value.
func (s *Store) Save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for %s: %w", key, err)
	}

	blob := Blob{Key: key, Value: datatypes.JSON(data)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&blob).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
