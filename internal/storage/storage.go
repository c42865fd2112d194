// Package storage defines the Storage interface every backend implements.
//
// The contract is generic over the record type T (types.Book,
// types.Student, ...). Handlers depend only on Storage[T], never on the
// concrete gorm implementation.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Update and Delete when no row has the
// requested primary key.
var ErrNotFound = errors.New("record not found")

// Fields is an input payload that knows how to overwrite every field of
// a record of type T. Implemented by the *Input types in package types.
type Fields[T any] interface {
	Apply(record *T)
}

// Storage is the database contract for one resource table.
type Storage[T any] interface {
	// GetList returns every row of the table.
	// Returns an empty slice (not nil) if the table is empty.
	GetList(ctx context.Context) ([]T, error)

	// GetByID fetches a single row by its primary key.
	// A missing row is NOT an error: the result is (nil, nil) and the
	// caller decides how to surface it.
	GetByID(ctx context.Context, id int64) (*T, error)

	// Create inserts a new row built from in and returns it as stored,
	// including a database-assigned id where the table has one.
	Create(ctx context.Context, in Fields[T]) (*T, error)

	// Update loads the row, overwrites every field from in and saves it.
	// Returns ErrNotFound if the row does not exist.
	Update(ctx context.Context, id int64, in Fields[T]) (*T, error)

	// Delete removes a row permanently.
	// Returns ErrNotFound if the row does not exist.
	Delete(ctx context.Context, id int64) error
}
