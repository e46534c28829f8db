package resource

import (
	"context"
	"fmt"

	"github.com/mnavarrocarter/rest-bundle/internal/domain"
	"github.com/mnavarrocarter/rest-bundle/internal/store"
	"github.com/mnavarrocarter/rest-bundle/internal/transform"
)

// Entity kinds handled by this package.
const (
	KindPost    = "post"
	KindComment = "comment"
	KindUser    = "user"
)

// Relation names declared by the transformers.
const (
	RelationAuthor   = "author"
	RelationComments = "comments"
	RelationPosts    = "posts"
)

// PostTransformer converts domain.Post entities. The author and comments
// relations are embedded only on request; their fields never leak into the
// flat mapping.
type PostTransformer struct {
	relations store.RelationLoader
}

// NewPostTransformer creates a PostTransformer.
func NewPostTransformer(relations store.RelationLoader) *PostTransformer {
	if relations == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("relation loader cannot be nil for PostTransformer")
	}
	return &PostTransformer{relations: relations}
}

// Ensure PostTransformer implements transform.Transformer
var _ transform.Transformer = (*PostTransformer)(nil)

// Transform implements transform.Transformer.
func (t *PostTransformer) Transform(ctx context.Context, entity any) (transform.Fields, error) {
	post, ok := entity.(*domain.Post)
	if !ok {
		return nil, fmt.Errorf("expected *domain.Post, got %T", entity)
	}

	var fields transform.Fields
	fields.Set("id", post.ID)
	fields.Set("slug", post.Slug)
	fields.Set("title", post.Title)
	fields.Set("body", post.Body)
	fields.Set("created_at", post.CreatedAt)
	return fields, nil
}

// Includes implements transform.Transformer.
func (t *PostTransformer) Includes() []string {
	return []string{RelationAuthor, RelationComments}
}

// ResolveInclude implements transform.Transformer.
func (t *PostTransformer) ResolveInclude(ctx context.Context, entity any, include string) (transform.Relation, error) {
	post, ok := entity.(*domain.Post)
	if !ok {
		return transform.Relation{}, fmt.Errorf("expected *domain.Post, got %T", entity)
	}

	switch include {
	case RelationAuthor:
		author, err := t.relations.LoadOne(ctx, post, RelationAuthor)
		if err != nil {
			return transform.Relation{}, err
		}
		return transform.One(KindUser, author), nil
	case RelationComments:
		comments, err := t.relations.LoadMany(ctx, post, RelationComments)
		if err != nil {
			return transform.Relation{}, err
		}
		return transform.Many(KindComment, comments), nil
	default:
		// The resolver only passes declared names; anything else is a bug.
		// ALLOW-PANIC: programming error, not a user-facing condition
		panic(fmt.Sprintf("undeclared include %q on %s", include, KindPost))
	}
}
