// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides quick type-conversion utilities.

It wraps standards like [strconv] for parsing query parameters in API
handlers.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToOptionalBool parses an optional boolean string.
//
// An empty (or blank) string yields (nil, true): the value is absent.
// A value accepted by [strconv.ParseBool] yields a pointer to it.
// Anything else yields (nil, false).
func ToOptionalBool(s string) (*bool, bool) {

	// Treat a blank value as an absent parameter
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, false
	}

	return &v, true
}
