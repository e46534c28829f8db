package resource

import (
	"context"
	"fmt"

	"github.com/mnavarrocarter/rest-bundle/internal/domain"
	"github.com/mnavarrocarter/rest-bundle/internal/store"
	"github.com/mnavarrocarter/rest-bundle/internal/transform"
)

// UserTransformer converts domain.User entities. The email field is only
// present when the field policy grants the viewer access; omission is silent,
// so a response without an email is indistinguishable from a user resource
// that never exposed one.
type UserTransformer struct {
	relations store.RelationLoader
	policy    FieldPolicy
}

// NewUserTransformer creates a UserTransformer.
func NewUserTransformer(relations store.RelationLoader, policy FieldPolicy) *UserTransformer {
	if relations == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("relation loader cannot be nil for UserTransformer")
	}
	if policy == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("field policy cannot be nil for UserTransformer")
	}
	return &UserTransformer{relations: relations, policy: policy}
}

// Ensure UserTransformer implements transform.Transformer
var _ transform.Transformer = (*UserTransformer)(nil)

// Transform implements transform.Transformer.
func (t *UserTransformer) Transform(ctx context.Context, entity any) (transform.Fields, error) {
	user, ok := entity.(*domain.User)
	if !ok {
		return nil, fmt.Errorf("expected *domain.User, got %T", entity)
	}

	var fields transform.Fields
	fields.Set("id", user.ID)
	fields.Set("name", user.Name)
	if t.policy.CanViewField(ctx, user.ID, "email") {
		fields.Set("email", user.Email)
	}
	return fields, nil
}

// Includes implements transform.Transformer.
func (t *UserTransformer) Includes() []string {
	return []string{RelationPosts}
}

// ResolveInclude implements transform.Transformer.
func (t *UserTransformer) ResolveInclude(ctx context.Context, entity any, include string) (transform.Relation, error) {
	user, ok := entity.(*domain.User)
	if !ok {
		return transform.Relation{}, fmt.Errorf("expected *domain.User, got %T", entity)
	}

	switch include {
	case RelationPosts:
		posts, err := t.relations.LoadMany(ctx, user, RelationPosts)
		if err != nil {
			return transform.Relation{}, err
		}
		return transform.Many(KindPost, posts), nil
	default:
		// ALLOW-PANIC: programming error, not a user-facing condition
		panic(fmt.Sprintf("undeclared include %q on %s", include, KindUser))
	}
}
