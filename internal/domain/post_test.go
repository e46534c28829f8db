package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewPost(t *testing.T) {
	t.Parallel()

	authorID := uuid.New()

	post, err := NewPost(authorID, "hello-world", "Hello, World", "First post.")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if post.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if post.AuthorID != authorID {
		t.Errorf("Expected author ID %s, got %s", authorID, post.AuthorID)
	}
	if post.Slug != "hello-world" {
		t.Errorf("Expected slug %q, got %q", "hello-world", post.Slug)
	}
	if post.CreatedAt.IsZero() || post.UpdatedAt.IsZero() {
		t.Error("Expected non-zero timestamps")
	}

	// Missing author
	if _, err := NewPost(uuid.Nil, "hello", "Hello", ""); err != ErrPostAuthorIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrPostAuthorIDEmpty, err)
	}

	// Missing slug
	if _, err := NewPost(authorID, "", "Hello", ""); err != ErrEmptyPostSlug {
		t.Errorf("Expected error %v, got %v", ErrEmptyPostSlug, err)
	}

	// Invalid slug
	if _, err := NewPost(authorID, "Hello World!", "Hello", ""); err != ErrInvalidPostSlug {
		t.Errorf("Expected error %v, got %v", ErrInvalidPostSlug, err)
	}

	// Missing title
	if _, err := NewPost(authorID, "hello", "   ", ""); err != ErrEmptyPostTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyPostTitle, err)
	}
}

func TestNewComment(t *testing.T) {
	t.Parallel()

	postID := uuid.New()
	authorID := uuid.New()

	comment, err := NewComment(postID, authorID, "Nice post")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if comment.PostID != postID {
		t.Errorf("Expected post ID %s, got %s", postID, comment.PostID)
	}
	if comment.AuthorID != authorID {
		t.Errorf("Expected author ID %s, got %s", authorID, comment.AuthorID)
	}

	if _, err := NewComment(uuid.Nil, authorID, "x"); err != ErrCommentPostIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrCommentPostIDEmpty, err)
	}
	if _, err := NewComment(postID, uuid.Nil, "x"); err != ErrCommentAuthorIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrCommentAuthorIDEmpty, err)
	}
	if _, err := NewComment(postID, authorID, "  "); err != ErrEmptyCommentBody {
		t.Errorf("Expected error %v, got %v", ErrEmptyCommentBody, err)
	}
}
