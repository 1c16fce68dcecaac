// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package book implements the bookshelf catalog: an ordered, in-memory
collection of book records and the create, list, get, update and delete
operations over it.

Architecture:

  - book.go: records, inputs, filters and client messages.
  - store.go / store_memory.go: the Repository port and its in-memory adapter.
  - service.go: validation, identifier assignment and derived fields.
  - http.go: the chi handler that maps the service onto /books.
*/
package book

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Book is one catalogued entry.
type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt time.Time `json:"insertedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Summary is the reduced view of a [Book] returned by list queries.
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// Projection returns the list view of the record.
func (b *Book) Projection() Summary {
	return Summary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}

func (b *Book) clone() *Book {
	copied := *b
	return &copied
}

// Input holds the caller-supplied fields for create and update.
//
// Reading is optional; when nil the service default applies.
type Input struct {
	Name      string `json:"name"`
	Year      int    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount"`
	ReadPage  int    `json:"readPage"`
	Reading   *bool  `json:"reading"`
}

// Filter holds the optional list criteria. Set criteria combine with AND.
type Filter struct {
	Name     string // case-insensitive substring of the book name
	Reading  *bool
	Finished *bool
}

// Matches reports whether b satisfies every criterion set on the filter.
func (f Filter) Matches(b *Book) bool {
	if f.Name != "" && !containsFold(b.Name, f.Name) {
		return false
	}
	if f.Reading != nil && b.Reading != *f.Reading {
		return false
	}
	if f.Finished != nil && b.Finished != *f.Finished {
		return false
	}
	return true
}

// containsFold reports whether substr is within s under Unicode case folding.
func containsFold(s, substr string) bool {
	// A Caser keeps state, so each call gets its own.
	return strings.Contains(cases.Fold().String(s), cases.Fold().String(substr))
}

// # Field Names

const (
	FieldName      = "name"
	FieldPageCount = "pageCount"
	FieldReadPage  = "readPage"
)

// # Query Parameters

const (
	ParamName     = "name"
	ParamReading  = "reading"
	ParamFinished = "finished"
	ParamBookID   = "bookId"
)

// # Client Messages

const (
	MsgMissingName              = "Mohon isi nama buku"
	MsgReadPageExceedsPageCount = "readPage tidak boleh lebih besar dari pageCount"
	MsgNegativePages            = "pageCount dan readPage tidak boleh negatif"

	MsgCreated = "Buku berhasil ditambahkan"
	MsgUpdated = "Buku berhasil diperbarui"
	MsgDeleted = "Buku berhasil dihapus"

	MsgCreateFailed = "Gagal menambahkan buku"
	MsgUpdateFailed = "Gagal memperbarui buku"
	MsgDeleteFailed = "Buku gagal dihapus"
)
