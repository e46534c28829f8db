package resource

import (
	"github.com/mnavarrocarter/rest-bundle/internal/store"
	"github.com/mnavarrocarter/rest-bundle/internal/transform"
)

// NewRegistry builds the transform.Registry for all entity kinds this
// application serves. Called once at startup; a duplicate or invalid
// registration stops the process.
func NewRegistry(relations store.RelationLoader, policy FieldPolicy) *transform.Registry {
	registry := transform.NewRegistry()
	registry.MustRegister(KindPost, NewPostTransformer(relations))
	registry.MustRegister(KindComment, NewCommentTransformer(relations))
	registry.MustRegister(KindUser, NewUserTransformer(relations, policy))
	return registry
}
