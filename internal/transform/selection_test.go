package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		wantPaths []string
	}{
		{
			name:      "empty string yields empty tree",
			raw:       "",
			wantPaths: nil,
		},
		{
			name:      "whitespace only yields empty tree",
			raw:       "   ",
			wantPaths: nil,
		},
		{
			name:      "single include",
			raw:       "author",
			wantPaths: []string{"author"},
		},
		{
			name:      "independent paths keep request order",
			raw:       "comments,author",
			wantPaths: []string{"comments", "author"},
		},
		{
			name:      "nested path",
			raw:       "comments.author",
			wantPaths: []string{"comments.author"},
		},
		{
			name:      "overlapping prefixes merge",
			raw:       "comments,comments.author",
			wantPaths: []string{"comments.author"},
		},
		{
			name:      "duplicate paths collapse",
			raw:       "author,author",
			wantPaths: []string{"author"},
		},
		{
			name:      "whitespace around segments is trimmed",
			raw:       " comments . author , author ",
			wantPaths: []string{"comments.author", "author"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, err := ParseSelection(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPaths, tree.Paths())
		})
	}
}

func TestParseSelectionMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty segment between dots", raw: "comments..author"},
		{name: "trailing dot", raw: "comments."},
		{name: "leading dot", raw: ".comments"},
		{name: "bare comma", raw: "author,,comments"},
		{name: "only a comma", raw: ","},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, err := ParseSelection(tt.raw)
			assert.Nil(t, tree)
			assert.ErrorIs(t, err, ErrMalformedSelection)
		})
	}
}

// Parsing the canonical serialization of a tree must reproduce the tree.
func TestParseSerializeRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"author",
		"author,comments.author",
		"comments,comments.author,comments.post.author",
		" a , b.c ,b",
		"a.b.c.d",
	}

	for _, raw := range inputs {
		raw := raw
		t.Run(raw, func(t *testing.T) {
			t.Parallel()

			first, err := ParseSelection(raw)
			require.NoError(t, err)

			second, err := ParseSelection(first.String())
			require.NoError(t, err)

			assert.Equal(t, first.Paths(), second.Paths())
			assert.Equal(t, first.String(), second.String())
		})
	}
}

func TestTreeDepth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
	}{
		{raw: "", want: 0},
		{raw: "author", want: 1},
		{raw: "comments.author", want: 2},
		{raw: "author,comments.author.posts", want: 3},
	}

	for _, tt := range tests {
		tree, err := ParseSelection(tt.raw)
		require.NoError(t, err)
		assert.Equal(t, tt.want, tree.Depth(), "depth of %q", tt.raw)
	}
}

func TestTreeChild(t *testing.T) {
	t.Parallel()

	tree, err := ParseSelection("comments.author")
	require.NoError(t, err)

	comments := tree.Child("comments")
	require.NotNil(t, comments)
	assert.Equal(t, []string{"author"}, comments.Includes())

	assert.Nil(t, tree.Child("author"))
}
