package kv

import (
	"context"
	"testing"

	"github.com/Sofiane224434/cinetech/pkg/storage"
	"github.com/Sofiane224434/cinetech/pkg/storage/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_CapAndOrder(t *testing.T) {
	ctx := context.Background()
	history := NewHistory(mem.New(), 5)

	for _, term := range []string{"a", "b", "c", "d", "e", "f"} {
		_, err := history.Record(ctx, term)
		require.NoError(t, err)
	}

	entries, err := history.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"f", "e", "d", "c", "b"}, entries)
}

func TestHistory_ReselectMovesToFront(t *testing.T) {
	ctx := context.Background()
	history := NewHistory(mem.New(), 5)

	for _, term := range []string{"a", "b", "c"} {
		_, err := history.Record(ctx, term)
		require.NoError(t, err)
	}

	entries, err := history.Record(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, entries)
}

func TestHistory_BlankTermIgnored(t *testing.T) {
	ctx := context.Background()
	history := NewHistory(mem.New(), 5)

	_, err := history.Record(ctx, "batman")
	require.NoError(t, err)

	entries, err := history.Record(ctx, "   ")
	require.NoError(t, err)
	assert.Equal(t, []string{"batman"}, entries)
}

func TestHistory_ClearRemovesKey(t *testing.T) {
	ctx := context.Background()
	adapter := mem.New()
	history := NewHistory(adapter, 5)

	_, err := history.Record(ctx, "batman")
	require.NoError(t, err)

	require.NoError(t, history.Clear(ctx))

	entries, err := history.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// the key is gone entirely, not left as an empty list
	_, err = adapter.Get(ctx, storage.KeySearchHistory)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestHistory_DefaultLimit(t *testing.T) {
	history := NewHistory(mem.New(), 0)
	assert.Equal(t, DefaultHistoryLimit, history.limit)
}
