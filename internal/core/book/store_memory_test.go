// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/internal/core/book"
)

/*
TestMemoryRepository_ReturnsCopies ensures callers cannot mutate stored records.
*/
func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := book.NewMemoryRepository()

	original := &book.Book{ID: "a", Name: "Buku A"}
	require.NoError(t, repo.Insert(ctx, original))
	original.Name = "changed after insert"

	fetched, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Buku A", fetched.Name)

	fetched.Name = "changed after get"
	listed, err := repo.List(ctx, book.Filter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Buku A", listed[0].Name)
}

/*
TestMemoryRepository_Update keeps identity fields and rejects unknown ids.
*/
func TestMemoryRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := book.NewMemoryRepository()

	inserted := epoch
	require.NoError(t, repo.Insert(ctx, &book.Book{ID: "a", Name: "Buku A", InsertedAt: inserted, UpdatedAt: inserted}))

	update := &book.Book{ID: "a", Name: "Buku A2", InsertedAt: inserted.Add(time.Hour), UpdatedAt: inserted.Add(time.Minute)}
	require.NoError(t, repo.Update(ctx, update))
	assert.Equal(t, inserted, update.InsertedAt)

	stored, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Buku A2", stored.Name)
	assert.Equal(t, inserted, stored.InsertedAt)
	assert.Equal(t, inserted.Add(time.Minute), stored.UpdatedAt)

	assert.ErrorIs(t, repo.Update(ctx, &book.Book{ID: "missing"}), book.ErrNotFound)
}

/*
TestMemoryRepository_InsertDuplicate refuses a second record with the same id.
*/
func TestMemoryRepository_InsertDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := book.NewMemoryRepository()

	require.NoError(t, repo.Insert(ctx, &book.Book{ID: "a"}))
	assert.ErrorIs(t, repo.Insert(ctx, &book.Book{ID: "a"}), book.ErrDuplicateID)

	count, err := repo.CountByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

/*
TestMemoryRepository_Delete preserves the relative order of the remainder.
*/
func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := book.NewMemoryRepository()

	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, repo.Insert(ctx, &book.Book{ID: id}))
	}

	require.NoError(t, repo.Delete(ctx, "b"))
	assert.ErrorIs(t, repo.Delete(ctx, "b"), book.ErrNotFound)

	listed, err := repo.List(ctx, book.Filter{})
	require.NoError(t, err)

	ids := make([]string, 0, len(listed))
	for _, b := range listed {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"a", "c", "d"}, ids)
}
