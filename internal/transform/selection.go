package transform

import (
	"fmt"
	"strings"
)

// Tree is a parsed selection expression: the set of relation paths a client
// asked to embed, merged on shared prefixes. "comments,comments.author" and
// "comments.author" produce the same tree. Include order is first-seen order
// from the raw expression.
type Tree struct {
	order    []string
	children map[string]*Tree
}

// ParseSelection parses a client selection expression such as
// "author,comments.author" into a Tree. The empty string yields an empty
// tree. Whitespace around segments is trimmed; duplicate paths collapse.
// Empty segments ("comments..author", a bare comma) fail with
// ErrMalformedSelection.
func ParseSelection(raw string) (*Tree, error) {
	tree := newTree()
	if strings.TrimSpace(raw) == "" {
		return tree, nil
	}

	for _, path := range strings.Split(raw, ",") {
		segments := strings.Split(path, ".")
		node := tree
		for _, segment := range segments {
			segment = strings.TrimSpace(segment)
			if segment == "" {
				return nil, fmt.Errorf("%w: empty segment in path %q", ErrMalformedSelection, strings.TrimSpace(path))
			}
			node = node.ensureChild(segment)
		}
	}
	return tree, nil
}

func newTree() *Tree {
	return &Tree{children: make(map[string]*Tree)}
}

func (t *Tree) ensureChild(name string) *Tree {
	if child, ok := t.children[name]; ok {
		return child
	}
	child := newTree()
	t.children[name] = child
	t.order = append(t.order, name)
	return child
}

// Empty reports whether no includes were requested.
func (t *Tree) Empty() bool {
	return len(t.order) == 0
}

// Includes returns the top-level include names in first-seen order.
func (t *Tree) Includes() []string {
	return t.order
}

// Child returns the subtree rooted at the given include name, or nil if the
// name was not requested.
func (t *Tree) Child(name string) *Tree {
	return t.children[name]
}

// Depth returns the length of the longest requested path. An empty tree has
// depth zero.
func (t *Tree) Depth() int {
	depth := 0
	for _, child := range t.children {
		if d := child.Depth() + 1; d > depth {
			depth = d
		}
	}
	return depth
}

// Paths returns the canonical dotted paths of the tree, one per leaf, in
// first-seen order. A node with children is represented only by its deeper
// paths, since parsing "comments.author" already implies "comments".
func (t *Tree) Paths() []string {
	var paths []string
	for _, name := range t.order {
		child := t.children[name]
		if child.Empty() {
			paths = append(paths, name)
			continue
		}
		for _, sub := range child.Paths() {
			paths = append(paths, name+"."+sub)
		}
	}
	return paths
}

// String re-serializes the tree to canonical comma/dot form. Parsing the
// result yields an identical tree.
func (t *Tree) String() string {
	return strings.Join(t.Paths(), ",")
}
