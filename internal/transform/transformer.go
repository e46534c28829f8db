package transform

import (
	"bytes"
	"context"
	"encoding/json"
)

// Transformer converts one kind of entity into its client-facing
// representation. Implementations are stateless with respect to requests:
// they are constructed once with the collaborators they need (relation
// loaders, field-visibility policies) and reused across requests.
type Transformer interface {
	// Transform produces the flat field mapping for the entity. It must not
	// mutate the entity, and it must not reach into relations that are
	// declared as includes: related data is supplied exclusively through
	// ResolveInclude so that clients control what gets embedded.
	Transform(ctx context.Context, entity any) (Fields, error)

	// Includes returns the relation names this transformer is able to embed.
	Includes() []string

	// ResolveInclude returns the related entity or entities for one of the
	// declared include names. The Resolver only calls it for names present
	// in both Includes() and the client's selection; calling it with an
	// undeclared name is a programming error and implementations may panic.
	ResolveInclude(ctx context.Context, entity any, include string) (Relation, error)
}

// Field is a single key/value pair in a transformed representation.
type Field struct {
	Key   string
	Value any
}

// Fields is the flat field mapping produced by a Transformer. Unlike a plain
// map it preserves insertion order, so the JSON output lists fields in the
// order the Transformer added them.
type Fields []Field

// Set appends the field, replacing the value in place if the key is already
// present.
func (f *Fields) Set(key string, value any) {
	for i := range *f {
		if (*f)[i].Key == key {
			(*f)[i].Value = value
			return
		}
	}
	*f = append(*f, Field{Key: key, Value: value})
}

// Get returns the value for key and whether it is present.
func (f Fields) Get(key string) (any, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// MarshalJSON encodes the fields as a JSON object in insertion order.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Relation is the result of resolving an include: the kind of the related
// resource plus either a single entity or an ordered sequence of entities.
type Relation struct {
	// Kind names the transformer responsible for the related entities.
	Kind string

	// Collection reports whether the relation is a to-many relation. A
	// to-many relation with no entities is still a collection; it embeds as
	// an empty list, not as null.
	Collection bool

	// Item is the related entity for a to-one relation. May be nil when the
	// relation is unset.
	Item any

	// Items are the related entities for a to-many relation, in the order
	// returned by the data-access collaborator.
	Items []any
}

// One builds a to-one Relation.
func One(kind string, item any) Relation {
	return Relation{Kind: kind, Item: item}
}

// Many builds a to-many Relation.
func Many(kind string, items []any) Relation {
	return Relation{Kind: kind, Collection: true, Items: items}
}
