package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyPostID       = errors.New("post ID cannot be empty")
	ErrPostAuthorIDEmpty = errors.New("post author ID cannot be empty")
	ErrEmptyPostSlug     = errors.New("post slug cannot be empty")
	ErrInvalidPostSlug   = errors.New("post slug may only contain lowercase letters, digits and hyphens")
	ErrEmptyPostTitle    = errors.New("post title cannot be empty")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Post represents a published article written by a User.
type Post struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPost creates a Post for the given author, generating a new UUID and
// setting the timestamps. Returns an error if validation fails.
func NewPost(authorID uuid.UUID, slug, title, body string) (*Post, error) {
	now := time.Now().UTC()
	post := &Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Slug:      slug,
		Title:     title,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}
	return post, nil
}

// Validate checks if the Post has valid data.
// Returns an error if any field fails validation.
func (p *Post) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPostID
	}
	if p.AuthorID == uuid.Nil {
		return ErrPostAuthorIDEmpty
	}
	if p.Slug == "" {
		return ErrEmptyPostSlug
	}
	if !slugPattern.MatchString(p.Slug) {
		return ErrInvalidPostSlug
	}
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyPostTitle
	}
	return nil
}
