package kv

import (
	"context"
	"testing"

	"github.com/Sofiane224434/cinetech/pkg/storage"
	"github.com/Sofiane224434/cinetech/pkg/storage/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatings_GetAbsentIsZero(t *testing.T) {
	ctx := context.Background()
	ratings := NewRatings(mem.New())

	rating, err := ratings.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 0, rating)
}

func TestRatings_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	ratings := NewRatings(mem.New())

	stored, err := ratings.Set(ctx, 42, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, stored)

	stored, err = ratings.Set(ctx, 42, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, stored)

	rating, err := ratings.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 5, rating)
}

func TestRatings_RemoveDeletesKey(t *testing.T) {
	ctx := context.Background()
	adapter := mem.New()
	ratings := NewRatings(adapter)

	_, err := ratings.Set(ctx, 42, 5)
	require.NoError(t, err)

	require.NoError(t, ratings.Remove(ctx, 42))

	rating, err := ratings.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 0, rating)

	// the id is gone from the mapping, not stored as 0
	all, err := ratings.All(ctx)
	require.NoError(t, err)
	_, ok := all["42"]
	assert.False(t, ok)
}

func TestRatings_RemoveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	ratings := NewRatings(mem.New())

	require.NoError(t, ratings.Remove(ctx, 42))
}

func TestRatings_RoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := mem.New()

	_, err := NewRatings(adapter).Set(ctx, 42, 4)
	require.NoError(t, err)

	rating, err := NewRatings(adapter).Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 4, rating)
}

func TestRatings_MalformedPayload(t *testing.T) {
	ctx := context.Background()
	adapter := mem.New()
	require.NoError(t, adapter.Set(ctx, storage.KeyRatings, "[1,2,3]"))

	ratings := NewRatings(adapter)
	all, err := ratings.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	stored, err := ratings.Set(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, stored)
}
