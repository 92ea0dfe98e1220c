package repository

import (
	"errors"

	"github.com/yashcodes29/Farm-wise/entities"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("Forum service unavailable - database not configured")
)

// ForumRepository owns the persisted post/comment/reply aggregates. Every
// mutation returns the updated post, like the original API did.
type ForumRepository interface {
	List() ([]entities.ForumPost, error)
	Create(post *entities.ForumPost) error
	AddComment(postID uint, author, text string) (*entities.ForumPost, error)
	// AddReply resolves commentRef as a comment id, or as a positional
	// index when it is a bare integer (legacy clients).
	AddReply(postID uint, commentRef, author, text string) (*entities.ForumPost, error)
	Like(postID uint) (*entities.ForumPost, error)
}
