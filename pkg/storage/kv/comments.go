package kv

import (
	"context"
	"strings"
	"time"

	"github.com/Sofiane224434/cinetech/pkg/storage"
)

// DefaultAuthor is the placeholder author until an account system exists.
const DefaultAuthor = "Utilisateur"

// Comments persists one thread per item under comments:<itemId>.
type Comments struct {
	kv storage.KeyValue
}

func NewComments(kvs storage.KeyValue) *Comments {
	return &Comments{kv: kvs}
}

// List returns the item's comments in insertion order. Consumers split
// top-level comments from replies themselves via ParentID.
func (c *Comments) List(ctx context.Context, itemID int64) ([]storage.Comment, error) {
	return read(ctx, c.kv, storage.CommentsKey(itemID), []storage.Comment{})
}

// Add appends a comment and returns the updated thread. Text that trims to
// empty leaves the thread untouched. Ids derive from the wall clock but are
// bumped past the newest existing id, so two adds in the same millisecond
// still get strictly increasing ids.
func (c *Comments) Add(ctx context.Context, itemID int64, text string, parentID *int64) ([]storage.Comment, error) {
	comments, err := c.List(ctx, itemID)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return comments, nil
	}

	now := time.Now().UnixMilli()
	id := now
	for _, existing := range comments {
		if existing.ID >= id {
			id = existing.ID + 1
		}
	}

	comments = append(comments, storage.Comment{
		ID:        id,
		Text:      text,
		ParentID:  parentID,
		CreatedAt: now,
		Author:    DefaultAuthor,
	})

	if err := write(ctx, c.kv, storage.CommentsKey(itemID), comments); err != nil {
		return nil, err
	}

	return comments, nil
}

// Delete removes the comment and its direct replies in one pass. Threads are
// only two levels deep, so no recursion is needed.
func (c *Comments) Delete(ctx context.Context, itemID, commentID int64) ([]storage.Comment, error) {
	comments, err := c.List(ctx, itemID)
	if err != nil {
		return nil, err
	}

	kept := make([]storage.Comment, 0, len(comments))
	for _, comment := range comments {
		if comment.ID == commentID {
			continue
		}
		if comment.ParentID != nil && *comment.ParentID == commentID {
			continue
		}
		kept = append(kept, comment)
	}

	if err := write(ctx, c.kv, storage.CommentsKey(itemID), kept); err != nil {
		return nil, err
	}

	return kept, nil
}
