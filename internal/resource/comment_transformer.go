package resource

import (
	"context"
	"fmt"

	"github.com/mnavarrocarter/rest-bundle/internal/domain"
	"github.com/mnavarrocarter/rest-bundle/internal/store"
	"github.com/mnavarrocarter/rest-bundle/internal/transform"
)

// CommentTransformer converts domain.Comment entities.
type CommentTransformer struct {
	relations store.RelationLoader
}

// NewCommentTransformer creates a CommentTransformer.
func NewCommentTransformer(relations store.RelationLoader) *CommentTransformer {
	if relations == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("relation loader cannot be nil for CommentTransformer")
	}
	return &CommentTransformer{relations: relations}
}

// Ensure CommentTransformer implements transform.Transformer
var _ transform.Transformer = (*CommentTransformer)(nil)

// Transform implements transform.Transformer.
func (t *CommentTransformer) Transform(ctx context.Context, entity any) (transform.Fields, error) {
	comment, ok := entity.(*domain.Comment)
	if !ok {
		return nil, fmt.Errorf("expected *domain.Comment, got %T", entity)
	}

	var fields transform.Fields
	fields.Set("id", comment.ID)
	fields.Set("body", comment.Body)
	fields.Set("created_at", comment.CreatedAt)
	return fields, nil
}

// Includes implements transform.Transformer.
func (t *CommentTransformer) Includes() []string {
	return []string{RelationAuthor}
}

// ResolveInclude implements transform.Transformer.
func (t *CommentTransformer) ResolveInclude(ctx context.Context, entity any, include string) (transform.Relation, error) {
	comment, ok := entity.(*domain.Comment)
	if !ok {
		return transform.Relation{}, fmt.Errorf("expected *domain.Comment, got %T", entity)
	}

	switch include {
	case RelationAuthor:
		author, err := t.relations.LoadOne(ctx, comment, RelationAuthor)
		if err != nil {
			return transform.Relation{}, err
		}
		return transform.One(KindUser, author), nil
	default:
		// ALLOW-PANIC: programming error, not a user-facing condition
		panic(fmt.Sprintf("undeclared include %q on %s", include, KindComment))
	}
}
