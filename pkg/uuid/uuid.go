// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides unique identifiers for the platform.

Two flavours are exposed:

  - New: time-ordered Version 7 values, used for request correlation IDs.
  - Generator: random Version 4 values (122 random bits), used for book IDs
    so that an identifier reveals nothing about creation order and a deleted
    ID is, for all practical purposes, never issued again.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string.
func New() string {

	// Create a new version 7 UUID (time-sortable)
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id.String()
}

// Generator issues random UUIDv4 strings.
type Generator struct{}

// NewID returns a fresh random identifier.
func (Generator) NewID() string {
	return uuid.NewString()
}
