package transform

import (
	"context"
	"fmt"
)

// DefaultMaxDepth bounds include recursion when no explicit depth is
// configured.
const DefaultMaxDepth = 10

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithMaxDepth sets the maximum allowed selection depth. Values below one are
// ignored.
func WithMaxDepth(depth int) ResolverOption {
	return func(r *Resolver) {
		if depth >= 1 {
			r.maxDepth = depth
		}
	}
}

// Resolver orchestrates transformation: it looks up the Transformer for each
// entity kind through the Registry and recursively resolves the relations the
// client selected. A Resolver holds no per-request state and is safe for
// concurrent use.
type Resolver struct {
	registry *Registry
	maxDepth int
}

// NewResolver creates a Resolver backed by the given registry.
func NewResolver(registry *Registry, opts ...ResolverOption) *Resolver {
	if registry == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("registry cannot be nil for Resolver")
	}

	r := &Resolver{
		registry: registry,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve transforms a single entity of the given kind, embedding every
// relation requested in the selection tree. An empty tree yields a Node
// containing exactly the Transformer's flat field mapping.
//
// Errors abort resolution entirely: no partial node is ever returned.
func (r *Resolver) Resolve(ctx context.Context, kind string, entity any, tree *Tree) (*Node, error) {
	if tree == nil {
		tree = newTree()
	}
	if depth := tree.Depth(); depth > r.maxDepth {
		return nil, fmt.Errorf("%w: selection depth %d exceeds limit %d", ErrMaxDepthExceeded, depth, r.maxDepth)
	}
	return r.resolve(ctx, kind, entity, tree, r.maxDepth)
}

// ResolveCollection transforms each member of an ordered collection
// independently, preserving input order and never deduplicating. If any
// member fails, the whole collection fails.
func (r *Resolver) ResolveCollection(ctx context.Context, kind string, entities []any, tree *Tree) ([]*Node, error) {
	if tree == nil {
		tree = newTree()
	}
	if depth := tree.Depth(); depth > r.maxDepth {
		return nil, fmt.Errorf("%w: selection depth %d exceeds limit %d", ErrMaxDepthExceeded, depth, r.maxDepth)
	}

	nodes := make([]*Node, 0, len(entities))
	for _, entity := range entities {
		node, err := r.resolve(ctx, kind, entity, tree, r.maxDepth)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (r *Resolver) resolve(ctx context.Context, kind string, entity any, tree *Tree, remaining int) (*Node, error) {
	transformer, err := r.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}

	fields, err := transformer.Transform(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("transforming %s: %w", kind, err)
	}
	node := newNode(fields)

	if tree.Empty() {
		return node, nil
	}
	// The up-front tree depth check already bounds recursion for any finite
	// tree; this guard keeps a future tree with back-references from looping.
	if remaining <= 0 {
		return nil, fmt.Errorf("%w: limit %d", ErrMaxDepthExceeded, r.maxDepth)
	}

	declared := make(map[string]struct{})
	for _, name := range transformer.Includes() {
		declared[name] = struct{}{}
	}

	for _, name := range tree.Includes() {
		if _, ok := declared[name]; !ok {
			return nil, fmt.Errorf("%w: %q is not an include of %s", ErrUndeclaredInclude, name, kind)
		}

		relation, err := transformer.ResolveInclude(ctx, entity, name)
		if err != nil {
			return nil, fmt.Errorf("resolving include %q of %s: %w", name, kind, err)
		}

		subtree := tree.Child(name)
		if relation.Collection {
			children := make([]*Node, 0, len(relation.Items))
			for _, item := range relation.Items {
				child, err := r.resolve(ctx, relation.Kind, item, subtree, remaining-1)
				if err != nil {
					return nil, err
				}
				children = append(children, child)
			}
			node.attachMany(name, children)
			continue
		}

		if relation.Item == nil {
			node.attachOne(name, nil)
			continue
		}
		child, err := r.resolve(ctx, relation.Kind, relation.Item, subtree, remaining-1)
		if err != nil {
			return nil, err
		}
		node.attachOne(name, child)
	}

	return node, nil
}
