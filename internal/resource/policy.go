package resource

import (
	"context"

	"github.com/google/uuid"

	"github.com/mnavarrocarter/rest-bundle/internal/service/auth"
)

// FieldPolicy decides per-field visibility during transformation. It is
// consulted read-only by transformers; a denied field is silently omitted
// from the output rather than reported as an error.
type FieldPolicy interface {
	CanViewField(ctx context.Context, ownerID uuid.UUID, field string) bool
}

// OwnerPolicy grants visibility of protected fields to the owning user only,
// based on the authenticated viewer carried in the request context.
type OwnerPolicy struct{}

// NewOwnerPolicy creates an OwnerPolicy.
func NewOwnerPolicy() *OwnerPolicy {
	return &OwnerPolicy{}
}

// CanViewField implements FieldPolicy.
func (*OwnerPolicy) CanViewField(ctx context.Context, ownerID uuid.UUID, field string) bool {
	viewer, ok := auth.ViewerFromContext(ctx)
	return ok && viewer == ownerID
}
