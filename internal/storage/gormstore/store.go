// Package gormstore implements storage.Storage for any gorm model.
//
// One Store[T] serves one table. Every write is its own atomic unit:
// Create and Delete are single statements, Update is "load, overwrite
// every field, save" inside one transaction so a concurrent delete
// surfaces as storage.ErrNotFound instead of resurrecting the row.
package gormstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aanand-mishra/campus-api/internal/storage"
	"github.com/aanand-mishra/campus-api/internal/storage/database"
)

// Store is the gorm-backed storage.Storage for records of type T.
type Store[T any] struct {
	db *database.Database
}

// New returns a Store for T over db.
func New[T any](db *database.Database) *Store[T] {
	return &Store[T]{db: db}
}

var _ storage.Storage[struct{}] = (*Store[struct{}])(nil)

// GetList returns all rows ordered by primary key.
func (s *Store[T]) GetList(ctx context.Context) ([]T, error) {
	records := make([]T, 0)
	if err := s.db.Conn(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("GetList: %w", err)
	}
	return records, nil
}

// GetByID returns the row with the given id, or (nil, nil) if there is none.
func (s *Store[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var record T
	err := s.db.Conn(ctx).First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID %d: %w", id, err)
	}
	return &record, nil
}

// Create inserts a row built from in. gorm fills the auto-assigned id
// back into the record.
func (s *Store[T]) Create(ctx context.Context, in storage.Fields[T]) (*T, error) {
	var record T
	in.Apply(&record)

	if err := s.db.Conn(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	return &record, nil
}

// Update overwrites every field of the row with the given id.
func (s *Store[T]) Update(ctx context.Context, id int64, in storage.Fields[T]) (*T, error) {
	var record T

	err := s.db.Conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return storage.ErrNotFound
			}
			return err
		}

		in.Apply(&record)

		// Select("*") writes every column, zero values included.
		return tx.Model(&record).Select("*").Updates(&record).Error
	})
	if err != nil {
		return nil, fmt.Errorf("Update %d: %w", id, err)
	}

	return &record, nil
}

// Delete removes the row with the given id.
func (s *Store[T]) Delete(ctx context.Context, id int64) error {
	result := s.db.Conn(ctx).Delete(new(T), id)
	if result.Error != nil {
		return fmt.Errorf("Delete %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("Delete %d: %w", id, storage.ErrNotFound)
	}
	return nil
}
