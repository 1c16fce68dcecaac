// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuid_test

import (
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/pkg/uuid"
)

/*
TestNew_IsVersion7 checks request IDs are time-ordered UUIDs.
*/
func TestNew_IsVersion7(t *testing.T) {
	parsed, err := googleuuid.Parse(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, googleuuid.Version(7), parsed.Version())
}

/*
TestGenerator_Unique issues a batch of IDs and expects no repeats.
*/
func TestGenerator_Unique(t *testing.T) {
	generator := uuid.Generator{}
	seen := make(map[string]struct{}, 1000)

	for range 1000 {
		id := generator.NewID()

		parsed, err := googleuuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, googleuuid.Version(4), parsed.Version())

		_, duplicate := seen[id]
		require.False(t, duplicate, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
