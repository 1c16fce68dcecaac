// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	"github.com/taibuivan/bookshelf/internal/platform/validate"
	"github.com/taibuivan/bookshelf/pkg/pointer"
	"github.com/taibuivan/bookshelf/pkg/slice"
	"github.com/taibuivan/bookshelf/pkg/uuid"
)

// IDGenerator issues identifiers for new records.
type IDGenerator interface {
	NewID() string
}

// Clock tells the service what time it is.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to [Clock].
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// Option customizes a [Service].
type Option func(*Service)

// WithIDGenerator replaces the default random UUID generator.
func WithIDGenerator(generator IDGenerator) Option {
	return func(service *Service) { service.ids = generator }
}

// WithClock replaces the wall clock.
func WithClock(clock Clock) Option {
	return func(service *Service) { service.clock = clock }
}

// WithDefaultReading sets the reading flag used when an input omits it.
func WithDefaultReading(reading bool) Option {
	return func(service *Service) { service.defaultReading = reading }
}

type Service struct {
	repo           Repository
	ids            IDGenerator
	clock          Clock
	defaultReading bool
	logger         *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger, opts ...Option) *Service {
	service := &Service{
		repo:   repo,
		ids:    uuid.Generator{},
		clock:  ClockFunc(time.Now),
		logger: logger,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBook validates input, stores a new record and returns its id.
func (service *Service) CreateBook(ctx context.Context, input Input) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}

	now := service.clock.Now().UTC()
	b := service.fromInput(input)
	b.ID = service.ids.NewID()
	b.InsertedAt = now
	b.UpdatedAt = now

	if err := service.repo.Insert(ctx, b); err != nil {
		if errors.Is(err, ErrDuplicateID) {
			return "", apperr.Internal(fmt.Errorf("book: insert %s: %w", b.ID, err))
		}
		return "", err
	}

	// The generator is trusted but checked: exactly one record must carry the new id.
	count, err := service.repo.CountByID(ctx, b.ID)
	if err != nil {
		return "", err
	}
	if count != 1 {
		return "", apperr.Internal(fmt.Errorf("book: expected one record with id %s, found %d", b.ID, count))
	}

	service.logger.Info("book_created", slog.String("book_id", b.ID), slog.String("name", b.Name))
	return b.ID, nil
}

// ListBooks returns the list view of every record matching filter.
func (service *Service) ListBooks(ctx context.Context, filter Filter) ([]Summary, error) {
	books, err := service.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return slice.Map(books, (*Book).Projection), nil
}

func (service *Service) GetBook(ctx context.Context, id string) (*Book, error) {
	return service.repo.Get(ctx, id)
}

// UpdateBook replaces every mutable field of the record. Validation runs
// before the lookup, so a bad input is reported even for an unknown id.
func (service *Service) UpdateBook(ctx context.Context, id string, input Input) error {
	if err := validateInput(input); err != nil {
		return err
	}

	b := service.fromInput(input)
	b.ID = id
	b.UpdatedAt = service.clock.Now().UTC()

	if err := service.repo.Update(ctx, b); err != nil {
		return err
	}

	service.logger.Info("book_updated", slog.String("book_id", id))
	return nil
}

func (service *Service) DeleteBook(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("book_deleted", slog.String("book_id", id))
	return nil
}

// CountBooks reports the size of the collection.
func (service *Service) CountBooks(ctx context.Context) (int, error) {
	return service.repo.Count(ctx)
}

func (service *Service) fromInput(input Input) *Book {
	return &Book{
		Name:      input.Name,
		Year:      input.Year,
		Author:    input.Author,
		Summary:   input.Summary,
		Publisher: input.Publisher,
		PageCount: input.PageCount,
		ReadPage:  input.ReadPage,
		Reading:   pointer.Fallback(input.Reading, service.defaultReading),
		Finished:  input.ReadPage == input.PageCount,
	}
}

// validateInput checks, in order: name present, readPage within pageCount,
// page numbers not negative.
func validateInput(input Input) error {
	validator := &validate.Validator{}

	validator.
		Required(FieldName, input.Name, MsgMissingName).
		Custom(FieldReadPage, input.ReadPage > input.PageCount, MsgReadPageExceedsPageCount).
		NonNegative(FieldPageCount, input.PageCount, MsgNegativePages).
		NonNegative(FieldReadPage, input.ReadPage, MsgNegativePages)

	return validator.Err()
}
