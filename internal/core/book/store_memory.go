// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/taibuivan/bookshelf/pkg/slice"
)

// MemoryRepository keeps the collection in process memory.
//
// # Concurrency
//
// A single RWMutex guards the slice: writers are exclusive, readers take a
// snapshot copy under the read lock.
type MemoryRepository struct {
	mu    sync.RWMutex
	books []*Book
}

// NewMemoryRepository returns an empty collection.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{books: make([]*Book, 0)}
}

func (repository *MemoryRepository) Insert(_ context.Context, b *Book) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.indexOf(b.ID) >= 0 {
		return ErrDuplicateID
	}

	repository.books = append(repository.books, b.clone())
	return nil
}

func (repository *MemoryRepository) List(_ context.Context, f Filter) ([]*Book, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	matched := slice.Filter(repository.books, f.Matches)
	return slice.Map(matched, (*Book).clone), nil
}

func (repository *MemoryRepository) Get(_ context.Context, id string) (*Book, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	index := repository.indexOf(id)
	if index < 0 {
		return nil, ErrNotFound
	}
	return repository.books[index].clone(), nil
}

func (repository *MemoryRepository) CountByID(_ context.Context, id string) (int, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	count := 0
	for _, b := range repository.books {
		if b.ID == id {
			count++
		}
	}
	return count, nil
}

func (repository *MemoryRepository) Update(_ context.Context, b *Book) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	index := repository.indexOf(b.ID)
	if index < 0 {
		return ErrNotFound
	}

	current := repository.books[index]
	b.InsertedAt = current.InsertedAt

	// updatedAt must move forward even when the clock has not.
	if !b.UpdatedAt.After(current.UpdatedAt) {
		b.UpdatedAt = current.UpdatedAt.Add(time.Nanosecond)
	}

	repository.books[index] = b.clone()
	return nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	index := repository.indexOf(id)
	if index < 0 {
		return ErrNotFound
	}

	repository.books = slices.Delete(repository.books, index, index+1)
	return nil
}

func (repository *MemoryRepository) Count(_ context.Context) (int, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return len(repository.books), nil
}

// indexOf must be called with the lock held.
func (repository *MemoryRepository) indexOf(id string) int {
	return slices.IndexFunc(repository.books, func(b *Book) bool { return b.ID == id })
}
