// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized implementations can be reused across test packages. Each mock
// exposes function fields to customize behavior per test, with a reasonable
// in-memory default when the field is nil:
//
//	userStore := mocks.NewMockUserStore()
//	userStore.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
//	    return nil, store.ErrUserNotFound
//	}
package mocks
