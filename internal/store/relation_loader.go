package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mnavarrocarter/rest-bundle/internal/domain"
)

// storeRelationLoader is the lazy RelationLoader: every relation access goes
// through the entity stores, which fetch on demand.
type storeRelationLoader struct {
	users    UserStore
	posts    PostStore
	comments CommentStore
}

// NewRelationLoader builds the lazy relation loader over the entity stores.
// It serves the application's relation graph: post.author, post.comments,
// comment.author and user.posts.
func NewRelationLoader(users UserStore, posts PostStore, comments CommentStore) RelationLoader {
	if users == nil || posts == nil || comments == nil {
		// ALLOW-PANIC: constructor enforcing required dependencies
		panic("relation loader requires user, post and comment stores")
	}
	return &storeRelationLoader{users: users, posts: posts, comments: comments}
}

// LoadOne implements RelationLoader.
func (l *storeRelationLoader) LoadOne(ctx context.Context, entity any, relation string) (any, error) {
	switch e := entity.(type) {
	case *domain.Post:
		if relation == "author" {
			return l.loadUser(ctx, e.AuthorID)
		}
	case *domain.Comment:
		if relation == "author" {
			return l.loadUser(ctx, e.AuthorID)
		}
	}
	return nil, UnknownRelationError(entity, relation)
}

// LoadMany implements RelationLoader.
func (l *storeRelationLoader) LoadMany(ctx context.Context, entity any, relation string) ([]any, error) {
	switch e := entity.(type) {
	case *domain.Post:
		if relation == "comments" {
			comments, err := l.comments.ListByPost(ctx, e.ID)
			if err != nil {
				return nil, err
			}
			items := make([]any, len(comments))
			for i, c := range comments {
				items[i] = c
			}
			return items, nil
		}
	case *domain.User:
		if relation == "posts" {
			posts, err := l.posts.ListByAuthor(ctx, e.ID)
			if err != nil {
				return nil, err
			}
			items := make([]any, len(posts))
			for i, p := range posts {
				items[i] = p
			}
			return items, nil
		}
	}
	return nil, UnknownRelationError(entity, relation)
}

func (l *storeRelationLoader) loadUser(ctx context.Context, id uuid.UUID) (any, error) {
	user, err := l.users.GetByID(ctx, id)
	if err != nil {
		// A dangling reference embeds as null rather than failing the
		// whole resolution.
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
