package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mnavarrocarter/rest-bundle/internal/domain"
	"github.com/mnavarrocarter/rest-bundle/internal/platform/logger"
	"github.com/mnavarrocarter/rest-bundle/internal/store"
	"github.com/mnavarrocarter/rest-bundle/internal/transform"
)

// Preloader batch-fetches the relations a selection tree asks for before
// resolution starts, so resolving a collection of N posts does not issue N
// per-entity relation queries. Relations deeper than the preloaded levels
// fall back to lazy loading through store.WithPreloadFallback.
type Preloader struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPreloader creates a Preloader.
func NewPreloader(db store.DBTX, log *slog.Logger) *Preloader {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &Preloader{
		db:     db,
		logger: log.With(slog.String("component", "preloader")),
	}
}

// PreloadPosts prefetches the author and comments relations (and the
// comments' authors) for the given posts, as far as the selection tree
// requests them. The returned cache is attached to the request context with
// store.WithPreloaded.
func (p *Preloader) PreloadPosts(ctx context.Context, posts []*domain.Post, tree *transform.Tree) (*store.Preloaded, error) {
	log := logger.FromContextOrDefault(ctx, p.logger)
	preloaded := store.NewPreloaded()
	if tree == nil || tree.Empty() || len(posts) == 0 {
		return preloaded, nil
	}

	if tree.Child("author") != nil {
		authorIDs := make([]uuid.UUID, 0, len(posts))
		for _, post := range posts {
			authorIDs = append(authorIDs, post.AuthorID)
		}
		users, err := p.usersByID(ctx, authorIDs)
		if err != nil {
			return nil, err
		}
		for _, post := range posts {
			preloaded.SetOne(post, "author", untypedUser(users[post.AuthorID]))
		}
		log.Debug("preloaded post authors", slog.Int("users", len(users)))
	}

	if commentsTree := tree.Child("comments"); commentsTree != nil {
		postIDs := make([]uuid.UUID, 0, len(posts))
		for _, post := range posts {
			postIDs = append(postIDs, post.ID)
		}
		comments, err := p.commentsByPost(ctx, postIDs)
		if err != nil {
			return nil, err
		}

		byPost := make(map[uuid.UUID][]any)
		for _, comment := range comments {
			byPost[comment.PostID] = append(byPost[comment.PostID], comment)
		}
		for _, post := range posts {
			items := byPost[post.ID]
			if items == nil {
				items = []any{}
			}
			preloaded.SetMany(post, "comments", items)
		}
		log.Debug("preloaded post comments", slog.Int("comments", len(comments)))

		if commentsTree.Child("author") != nil {
			authorIDs := make([]uuid.UUID, 0, len(comments))
			for _, comment := range comments {
				authorIDs = append(authorIDs, comment.AuthorID)
			}
			users, err := p.usersByID(ctx, authorIDs)
			if err != nil {
				return nil, err
			}
			for _, comment := range comments {
				preloaded.SetOne(comment, "author", untypedUser(users[comment.AuthorID]))
			}
			log.Debug("preloaded comment authors", slog.Int("users", len(users)))
		}
	}

	return preloaded, nil
}

// untypedUser keeps a missing user as an untyped nil so that downstream
// nil checks on the interface value behave.
func untypedUser(user *domain.User) any {
	if user == nil {
		return nil
	}
	return user
}

func (p *Preloader) usersByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.User, error) {
	users := make(map[uuid.UUID]*domain.User)
	if len(ids) == 0 {
		return users, nil
	}

	query := `
		SELECT id, name, email, hashed_password, created_at, updated_at
		FROM users
		WHERE id = ANY($1::uuid[])
	`
	rows, err := p.db.QueryContext(ctx, query, uuidStrings(ids))
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.HashedPassword,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		users[user.ID] = &user
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return users, nil
}

func (p *Preloader) commentsByPost(ctx context.Context, postIDs []uuid.UUID) ([]*domain.Comment, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, post_id, author_id, body, created_at
		FROM comments
		WHERE post_id = ANY($1::uuid[])
		ORDER BY created_at ASC, id ASC
	`
	rows, err := p.db.QueryContext(ctx, query, uuidStrings(postIDs))
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var comments []*domain.Comment
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.Body,
			&comment.CreatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return comments, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
