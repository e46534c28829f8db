package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mnavarrocarter/rest-bundle/internal/domain"
	"github.com/mnavarrocarter/rest-bundle/internal/store"
)

// MockPostStore implements store.PostStore for testing.
type MockPostStore struct {
	// Function fields for customizable behavior
	CreateFn       func(ctx context.Context, post *domain.Post) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListFn         func(ctx context.Context, offset, limit int) ([]*domain.Post, int, error)
	ListByAuthorFn func(ctx context.Context, authorID uuid.UUID) ([]*domain.Post, error)

	mu    sync.Mutex
	posts []*domain.Post
}

// Ensure MockPostStore implements store.PostStore
var _ store.PostStore = (*MockPostStore)(nil)

// NewMockPostStore creates a mock store with an empty in-memory default.
func NewMockPostStore() *MockPostStore {
	return &MockPostStore{}
}

// Add seeds a post into the in-memory default. Posts are listed in the order
// they were added.
func (m *MockPostStore) Add(post *domain.Post) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = append(m.posts, post)
}

// Create implements the PostStore interface.
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.posts {
		if existing.Slug == post.Slug {
			return store.ErrSlugExists
		}
	}
	m.posts = append(m.posts, post)
	return nil
}

// GetByID implements the PostStore interface.
func (m *MockPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, post := range m.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return nil, store.ErrPostNotFound
}

// List implements the PostStore interface.
func (m *MockPostStore) List(ctx context.Context, offset, limit int) ([]*domain.Post, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, offset, limit)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	total := len(m.posts)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := make([]*domain.Post, end-offset)
	copy(page, m.posts[offset:end])
	return page, total, nil
}

// ListByAuthor implements the PostStore interface.
func (m *MockPostStore) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Post, error) {
	if m.ListByAuthorFn != nil {
		return m.ListByAuthorFn(ctx, authorID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*domain.Post
	for _, post := range m.posts {
		if post.AuthorID == authorID {
			result = append(result, post)
		}
	}
	return result, nil
}

// MockCommentStore implements store.CommentStore for testing.
type MockCommentStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, comment *domain.Comment) error
	ListByPostFn func(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error)

	mu       sync.Mutex
	comments []*domain.Comment
}

// Ensure MockCommentStore implements store.CommentStore
var _ store.CommentStore = (*MockCommentStore)(nil)

// NewMockCommentStore creates a mock store with an empty in-memory default.
func NewMockCommentStore() *MockCommentStore {
	return &MockCommentStore{}
}

// Add seeds a comment into the in-memory default.
func (m *MockCommentStore) Add(comment *domain.Comment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.comments = append(m.comments, comment)
}

// Create implements the CommentStore interface.
func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.comments = append(m.comments, comment)
	return nil
}

// ListByPost implements the CommentStore interface.
func (m *MockCommentStore) ListByPost(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error) {
	if m.ListByPostFn != nil {
		return m.ListByPostFn(ctx, postID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*domain.Comment
	for _, comment := range m.comments {
		if comment.PostID == postID {
			result = append(result, comment)
		}
	}
	return result, nil
}
