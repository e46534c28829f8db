package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/mnavarrocarter/rest-bundle/internal/domain"
)

// RelationLoader is the data-access collaborator behind include resolution:
// given an entity and a relation name it returns the related entity or the
// ordered sequence of related entities. Implementations may fetch on demand
// (lazy) or serve from a pre-populated cache (eager); the two are
// substitutable strategies behind this one interface.
type RelationLoader interface {
	// LoadOne fetches the single entity behind a to-one relation. A nil
	// result with a nil error means the relation is unset.
	LoadOne(ctx context.Context, entity any, relation string) (any, error)

	// LoadMany fetches the ordered entities behind a to-many relation.
	LoadMany(ctx context.Context, entity any, relation string) ([]any, error)
}

// EntityKey returns a stable cache key for a known domain entity, used to
// index preloaded relations. The second return is false for entity types the
// store does not know.
func EntityKey(entity any) (string, bool) {
	switch e := entity.(type) {
	case *domain.Post:
		return "post:" + e.ID.String(), true
	case *domain.Comment:
		return "comment:" + e.ID.String(), true
	case *domain.User:
		return "user:" + e.ID.String(), true
	default:
		return "", false
	}
}

// Preloaded holds relations fetched ahead of resolution, keyed by entity and
// relation name. It is populated once per request by an eager loading pass
// and then read concurrently during resolution.
type Preloaded struct {
	mu   sync.RWMutex
	one  map[string]any
	many map[string][]any
}

// NewPreloaded creates an empty preload cache.
func NewPreloaded() *Preloaded {
	return &Preloaded{
		one:  make(map[string]any),
		many: make(map[string][]any),
	}
}

func relationKey(entityKey, relation string) string {
	return entityKey + "/" + relation
}

// SetOne records the preloaded entity behind a to-one relation.
func (p *Preloaded) SetOne(entity any, relation string, item any) {
	key, ok := EntityKey(entity)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.one[relationKey(key, relation)] = item
}

// SetMany records the preloaded entities behind a to-many relation.
func (p *Preloaded) SetMany(entity any, relation string, items []any) {
	key, ok := EntityKey(entity)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.many[relationKey(key, relation)] = items
}

// One returns the preloaded entity for a to-one relation, if present.
func (p *Preloaded) One(entity any, relation string) (any, bool) {
	key, ok := EntityKey(entity)
	if !ok {
		return nil, false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	item, ok := p.one[relationKey(key, relation)]
	return item, ok
}

// Many returns the preloaded entities for a to-many relation, if present.
func (p *Preloaded) Many(entity any, relation string) ([]any, bool) {
	key, ok := EntityKey(entity)
	if !ok {
		return nil, false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	items, ok := p.many[relationKey(key, relation)]
	return items, ok
}

type preloadedContextKey struct{}

// WithPreloaded attaches a preload cache to the context for the duration of
// one request's resolution.
func WithPreloaded(ctx context.Context, p *Preloaded) context.Context {
	return context.WithValue(ctx, preloadedContextKey{}, p)
}

// PreloadedFromContext retrieves the request's preload cache, if any.
func PreloadedFromContext(ctx context.Context) (*Preloaded, bool) {
	p, ok := ctx.Value(preloadedContextKey{}).(*Preloaded)
	return p, ok
}

// preloadAwareLoader consults the request's preload cache before falling back
// to the underlying loader.
type preloadAwareLoader struct {
	base RelationLoader
}

// WithPreloadFallback wraps a RelationLoader so that relations preloaded into
// the request context are served from memory and everything else falls
// through to the wrapped loader. With no preload cache in the context the
// wrapper is a pass-through, which makes lazy loading the default behavior.
func WithPreloadFallback(base RelationLoader) RelationLoader {
	if base == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("base relation loader cannot be nil")
	}
	return &preloadAwareLoader{base: base}
}

func (l *preloadAwareLoader) LoadOne(ctx context.Context, entity any, relation string) (any, error) {
	if preloaded, ok := PreloadedFromContext(ctx); ok {
		if item, hit := preloaded.One(entity, relation); hit {
			return item, nil
		}
	}
	return l.base.LoadOne(ctx, entity, relation)
}

func (l *preloadAwareLoader) LoadMany(ctx context.Context, entity any, relation string) ([]any, error) {
	if preloaded, ok := PreloadedFromContext(ctx); ok {
		if items, hit := preloaded.Many(entity, relation); hit {
			return items, nil
		}
	}
	return l.base.LoadMany(ctx, entity, relation)
}

// UnknownRelationError builds the error returned by loaders asked for a
// relation they do not serve.
func UnknownRelationError(entity any, relation string) error {
	return fmt.Errorf("%w: %q on %T", ErrUnknownRelation, relation, entity)
}
