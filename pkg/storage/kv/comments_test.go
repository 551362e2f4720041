package kv

import (
	"context"
	"testing"

	"github.com/Sofiane224434/cinetech/pkg/storage"
	"github.com/Sofiane224434/cinetech/pkg/storage/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComments_Add(t *testing.T) {
	ctx := context.Background()
	comments := NewComments(mem.New())

	thread, err := comments.Add(ctx, 42, "Magnifique !", nil)
	require.NoError(t, err)
	require.Len(t, thread, 1)
	assert.Equal(t, "Magnifique !", thread[0].Text)
	assert.Nil(t, thread[0].ParentID)
	assert.Equal(t, DefaultAuthor, thread[0].Author)
	assert.NotZero(t, thread[0].ID)
	assert.NotZero(t, thread[0].CreatedAt)
	assert.False(t, thread[0].IsReply())
}

func TestComments_AddTrimsAndIgnoresEmpty(t *testing.T) {
	ctx := context.Background()
	comments := NewComments(mem.New())

	thread, err := comments.Add(ctx, 42, "   \t\n", nil)
	require.NoError(t, err)
	assert.Empty(t, thread)

	thread, err = comments.Add(ctx, 42, "  bien vu  ", nil)
	require.NoError(t, err)
	require.Len(t, thread, 1)
	assert.Equal(t, "bien vu", thread[0].Text)
}

func TestComments_MonotonicIDs(t *testing.T) {
	ctx := context.Background()
	comments := NewComments(mem.New())

	// rapid adds can land in the same millisecond; ids must still increase
	var lastID int64
	for i := 0; i < 10; i++ {
		thread, err := comments.Add(ctx, 42, "encore", nil)
		require.NoError(t, err)
		id := thread[len(thread)-1].ID
		assert.Greater(t, id, lastID)
		lastID = id
	}
}

func TestComments_CascadeDelete(t *testing.T) {
	ctx := context.Background()
	comments := NewComments(mem.New())

	thread, err := comments.Add(ctx, 42, "top-level", nil)
	require.NoError(t, err)
	parentID := thread[0].ID

	thread, err = comments.Add(ctx, 42, "reply", &parentID)
	require.NoError(t, err)
	require.Len(t, thread, 2)
	replyID := thread[1].ID
	assert.True(t, thread[1].IsReply())

	t.Run("deleting the reply keeps the parent", func(t *testing.T) {
		remaining, err := comments.Delete(ctx, 42, replyID)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, parentID, remaining[0].ID)
	})

	t.Run("deleting the parent removes its replies", func(t *testing.T) {
		thread, err := comments.Add(ctx, 42, "another reply", &parentID)
		require.NoError(t, err)
		require.Len(t, thread, 2)

		remaining, err := comments.Delete(ctx, 42, parentID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})
}

func TestComments_DeleteAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	comments := NewComments(mem.New())

	thread, err := comments.Add(ctx, 42, "seul", nil)
	require.NoError(t, err)

	remaining, err := comments.Delete(ctx, 42, 999)
	require.NoError(t, err)
	assert.Equal(t, thread, remaining)
}

func TestComments_ScopedPerItem(t *testing.T) {
	ctx := context.Background()
	adapter := mem.New()
	comments := NewComments(adapter)

	_, err := comments.Add(ctx, 1, "sur le film un", nil)
	require.NoError(t, err)
	_, err = comments.Add(ctx, 2, "sur le film deux", nil)
	require.NoError(t, err)

	threadOne, err := comments.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, threadOne, 1)
	assert.Equal(t, "sur le film un", threadOne[0].Text)

	// each item owns its own key
	raw, err := adapter.Get(ctx, storage.CommentsKey(2))
	require.NoError(t, err)
	assert.Contains(t, raw, "sur le film deux")
}
