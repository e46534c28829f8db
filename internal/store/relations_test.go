package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnavarrocarter/rest-bundle/internal/domain"
	"github.com/mnavarrocarter/rest-bundle/internal/store"
)

// countingLoader records how often the underlying store was hit.
type countingLoader struct {
	oneCalls  int
	manyCalls int
	one       any
	many      []any
}

func (l *countingLoader) LoadOne(ctx context.Context, entity any, relation string) (any, error) {
	l.oneCalls++
	return l.one, nil
}

func (l *countingLoader) LoadMany(ctx context.Context, entity any, relation string) ([]any, error) {
	l.manyCalls++
	return l.many, nil
}

func newTestPost(t *testing.T) *domain.Post {
	t.Helper()
	author, err := domain.NewUser("Ada", "ada@example.com", "hash")
	require.NoError(t, err)
	post, err := domain.NewPost(author.ID, "hello", "Hello", "body")
	require.NoError(t, err)
	return post
}

func TestPreloadFallbackServesFromCache(t *testing.T) {
	t.Parallel()

	post := newTestPost(t)
	author, err := domain.NewUser("Eve", "eve@example.com", "hash")
	require.NoError(t, err)

	base := &countingLoader{}
	loader := store.WithPreloadFallback(base)

	preloaded := store.NewPreloaded()
	preloaded.SetOne(post, "author", author)
	preloaded.SetMany(post, "comments", []any{})
	ctx := store.WithPreloaded(context.Background(), preloaded)

	got, err := loader.LoadOne(ctx, post, "author")
	require.NoError(t, err)
	assert.Equal(t, author, got)

	items, err := loader.LoadMany(ctx, post, "comments")
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.Zero(t, base.oneCalls, "preloaded to-one relation must not hit the store")
	assert.Zero(t, base.manyCalls, "preloaded to-many relation must not hit the store")
}

func TestPreloadFallbackDelegatesOnMiss(t *testing.T) {
	t.Parallel()

	post := newTestPost(t)
	base := &countingLoader{one: "from-store"}
	loader := store.WithPreloadFallback(base)

	// No preload cache in the context at all: plain lazy loading.
	got, err := loader.LoadOne(context.Background(), post, "author")
	require.NoError(t, err)
	assert.Equal(t, "from-store", got)
	assert.Equal(t, 1, base.oneCalls)

	// Cache present but does not cover this relation.
	ctx := store.WithPreloaded(context.Background(), store.NewPreloaded())
	_, err = loader.LoadMany(ctx, post, "comments")
	require.NoError(t, err)
	assert.Equal(t, 1, base.manyCalls)
}

func TestEntityKey(t *testing.T) {
	t.Parallel()

	post := newTestPost(t)
	key, ok := store.EntityKey(post)
	assert.True(t, ok)
	assert.Equal(t, "post:"+post.ID.String(), key)

	_, ok = store.EntityKey("not an entity")
	assert.False(t, ok)
}
