package store

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is a single persisted state entry in the relational backend.
type Entry struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value string `gorm:"type:text"`
}

// TableName keeps the table name stable across GORM naming strategies.
func (Entry) TableName() string {
	return "store_entries"
}

type sqlStore struct {
	db *gorm.DB
}

// NewSQL returns a Store backed by a single key/value table via GORM.
func NewSQL(db *gorm.DB) Store {
	return &sqlStore{db: db}
}

// Migrate creates the backing table if it does not exist.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Entry{})
}

func (s *sqlStore) GetJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	var entry Entry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(entry.Value), out); err != nil {
		return false, err
	}

	return true, nil
}

func (s *sqlStore) SetJSON(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.upsert(ctx, key, string(payload))
}

func (s *sqlStore) GetString(ctx context.Context, key string) (string, bool, error) {
	var entry Entry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return entry.Value, true, nil
}

func (s *sqlStore) SetString(ctx context.Context, key, value string) error {
	return s.upsert(ctx, key, value)
}

func (s *sqlStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Delete(&Entry{}, "key IN ?", keys).Error
}

func (s *sqlStore) upsert(ctx context.Context, key, value string) error {
	entry := Entry{Key: key, Value: value}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}
