// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"errors"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
)

var (
	// ErrNotFound is returned when no live record carries the requested id.
	ErrNotFound = apperr.NotFound("Id")

	// ErrDuplicateID is returned by Insert when the id is already taken.
	ErrDuplicateID = errors.New("book: duplicate id")
)

// Repository owns the ordered collection of books.
//
// Implementations must return copies so callers can never mutate stored
// records, and must serialize writers against each other.
type Repository interface {
	// Insert appends b to the end of the collection.
	Insert(ctx context.Context, b *Book) error
	// List returns every record matching f, in insertion order.
	List(ctx context.Context, f Filter) ([]*Book, error)
	Get(ctx context.Context, id string) (*Book, error)
	// CountByID returns how many records carry id (0 or 1 when healthy).
	CountByID(ctx context.Context, id string) (int, error)
	// Update replaces the mutable fields of the record with b.ID. ID and
	// InsertedAt of the stored record win; b is updated to reflect them.
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
