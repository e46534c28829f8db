package transform

// Document is the top-level envelope around a resolved resource: the data
// member holds the resolved node or nodes, the optional meta member holds
// out-of-band information such as pagination. Embedded relations carry the
// same one-level data wrapping so a meta slot exists at every level.
type Document struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta carries out-of-band information attached to a Document.
type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes the page window of a collection response. The values
// are computed by an external pagination collaborator; this package only
// defines the attachment point.
type Pagination struct {
	Total       int             `json:"total"`
	Count       int             `json:"count"`
	PerPage     int             `json:"per_page"`
	CurrentPage int             `json:"current_page"`
	TotalPages  int             `json:"total_pages"`
	Links       PaginationLinks `json:"links"`
}

// PaginationLinks holds navigation URLs for a paginated collection.
type PaginationLinks struct {
	Self     string `json:"self,omitempty"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
}

// NewItemDocument wraps a single resolved node as {"data": ...}.
func NewItemDocument(node *Node) *Document {
	return &Document{Data: node}
}

// NewCollectionDocument wraps resolved nodes as {"data": [...]}, attaching
// the optional meta. A nil slice encodes as an empty list, not null.
func NewCollectionDocument(nodes []*Node, meta *Meta) *Document {
	if nodes == nil {
		nodes = []*Node{}
	}
	return &Document{Data: nodes, Meta: meta}
}
