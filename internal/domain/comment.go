package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyCommentID       = errors.New("comment ID cannot be empty")
	ErrCommentPostIDEmpty   = errors.New("comment post ID cannot be empty")
	ErrCommentAuthorIDEmpty = errors.New("comment author ID cannot be empty")
	ErrEmptyCommentBody     = errors.New("comment body cannot be empty")
)

// Comment represents a reader's comment on a Post.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment creates a Comment on the given post, generating a new UUID and
// setting the creation timestamp. Returns an error if validation fails.
func NewComment(postID, authorID uuid.UUID, body string) (*Comment, error) {
	comment := &Comment{
		ID:        uuid.New(),
		PostID:    postID,
		AuthorID:  authorID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}
	return comment, nil
}

// Validate checks if the Comment has valid data.
// Returns an error if any field fails validation.
func (c *Comment) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCommentID
	}
	if c.PostID == uuid.Nil {
		return ErrCommentPostIDEmpty
	}
	if c.AuthorID == uuid.Nil {
		return ErrCommentAuthorIDEmpty
	}
	if strings.TrimSpace(c.Body) == "" {
		return ErrEmptyCommentBody
	}
	return nil
}
