package store

import (
	"context"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type keyValue struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

type SqliteStore struct {
	db *gorm.DB
}

func NewSqliteStore(connectionString string) (*SqliteStore, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(keyValue{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate KeyValue entity")
	}

	return &SqliteStore{db: db}, nil
}

func (s *SqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	record := &keyValue{}
	err := s.db.WithContext(ctx).First(record, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record.Value, nil
}

func (s *SqliteStore) Set(ctx context.Context, key string, value []byte) error {
	return s.db.WithContext(ctx).Save(keyValue{Key: key, Value: value}).Error
}

func (s *SqliteStore) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Delete(&keyValue{}, "key IN ?", keys).Error
}

func (s *SqliteStore) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
