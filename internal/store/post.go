package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/mnavarrocarter/rest-bundle/internal/domain"
)

// PostStore defines the interface for post data persistence.
type PostStore interface {
	// Create saves a new post to the store.
	// Returns ErrSlugExists if a post with the same slug already exists.
	// Returns ErrInvalidEntity if the author does not exist.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its unique ID.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// List retrieves a page of posts ordered by creation time, newest first,
	// along with the total number of posts. The total feeds the pagination
	// metadata on collection responses.
	List(ctx context.Context, offset, limit int) ([]*domain.Post, int, error)

	// ListByAuthor retrieves all posts written by a user, newest first.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Post, error)
}

// CommentStore defines the interface for comment data persistence.
type CommentStore interface {
	// Create saves a new comment to the store.
	// Returns ErrInvalidEntity if the post or author does not exist.
	Create(ctx context.Context, comment *domain.Comment) error

	// ListByPost retrieves all comments on a post, oldest first.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error)
}
