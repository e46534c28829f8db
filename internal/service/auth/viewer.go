package auth

import (
	"context"

	"github.com/google/uuid"
)

type viewerContextKey struct{}

// WithViewer attaches the authenticated viewer's user ID to the context.
// The authentication middleware sets it; field-visibility policies read it
// during transformation.
func WithViewer(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, viewerContextKey{}, userID)
}

// ViewerFromContext retrieves the authenticated viewer's user ID, if any.
// Anonymous requests have no viewer.
func ViewerFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(viewerContextKey{}).(uuid.UUID)
	return userID, ok && userID != uuid.Nil
}
