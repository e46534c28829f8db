package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnavarrocarter/rest-bundle/internal/api"
	"github.com/mnavarrocarter/rest-bundle/internal/domain"
	"github.com/mnavarrocarter/rest-bundle/internal/mocks"
	"github.com/mnavarrocarter/rest-bundle/internal/resource"
	"github.com/mnavarrocarter/rest-bundle/internal/store"
	"github.com/mnavarrocarter/rest-bundle/internal/transform"
)

// testEnv wires handlers against mock stores and a real resolver, the way
// cmd/server wires them against postgres.
type testEnv struct {
	users    *mocks.MockUserStore
	posts    *mocks.MockPostStore
	comments *mocks.MockCommentStore
	router   chi.Router

	author *domain.User
	post   *domain.Post
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users:    mocks.NewMockUserStore(),
		posts:    mocks.NewMockPostStore(),
		comments: mocks.NewMockCommentStore(),
	}

	var err error
	env.author, err = domain.NewUser("Ada", "ada@example.com", "hash")
	require.NoError(t, err)
	env.post, err = domain.NewPost(env.author.ID, "hello-world", "Hello, World", "First post.")
	require.NoError(t, err)
	comment, err := domain.NewComment(env.post.ID, env.author.ID, "Nice one")
	require.NoError(t, err)

	env.users.Add(env.author)
	env.posts.Add(env.post)
	env.comments.Add(comment)

	loader := store.NewRelationLoader(env.users, env.posts, env.comments)
	registry := resource.NewRegistry(loader, resource.NewOwnerPolicy())
	resolver := transform.NewResolver(registry, transform.WithMaxDepth(3))

	postHandler := api.NewPostHandler(env.posts, resolver, nil, nil)
	userHandler := api.NewUserHandler(env.users, resolver, nil)

	router := chi.NewRouter()
	router.Get("/api/posts", postHandler.List)
	router.Get("/api/posts/{id}", postHandler.Get)
	router.Get("/api/users/{id}", userHandler.Get)
	env.router = router
	return env
}

func (env *testEnv) get(t *testing.T, url string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestListPosts(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	rec, body := env.get(t, "/api/posts")

	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)

	item, ok := data[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hello-world", item["slug"])
	assert.NotContains(t, item, "author")

	meta, ok := body["meta"].(map[string]any)
	require.True(t, ok)
	pagination, ok := meta["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), pagination["total"])
	assert.Equal(t, float64(1), pagination["count"])
	assert.Equal(t, float64(20), pagination["per_page"])
	assert.Equal(t, float64(1), pagination["current_page"])
	assert.Equal(t, float64(1), pagination["total_pages"])
}

func TestListPostsWithIncludes(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	rec, body := env.get(t, "/api/posts?with=author,comments.author")

	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].([]any)
	require.Len(t, data, 1)
	item := data[0].(map[string]any)

	author, ok := item["author"].(map[string]any)
	require.True(t, ok)
	authorData, ok := author["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada", authorData["name"])
	// Email stays private for anonymous requests.
	assert.NotContains(t, authorData, "email")

	comments, ok := item["comments"].(map[string]any)
	require.True(t, ok)
	commentData, ok := comments["data"].([]any)
	require.True(t, ok)
	require.Len(t, commentData, 1)
	comment := commentData[0].(map[string]any)
	assert.Equal(t, "Nice one", comment["body"])
	nestedAuthor := comment["author"].(map[string]any)["data"].(map[string]any)
	assert.Equal(t, "Ada", nestedAuthor["name"])
}

func TestListPostsPagination(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	for _, slug := range []string{"second", "third", "fourth"} {
		post, err := domain.NewPost(env.author.ID, slug, "Title", "Body")
		require.NoError(t, err)
		env.posts.Add(post)
	}

	rec, body := env.get(t, "/api/posts?page=2&per_page=2")
	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].([]any)
	assert.Len(t, data, 2)

	pagination := body["meta"].(map[string]any)["pagination"].(map[string]any)
	assert.Equal(t, float64(4), pagination["total"])
	assert.Equal(t, float64(2), pagination["count"])
	assert.Equal(t, float64(2), pagination["current_page"])
	assert.Equal(t, float64(2), pagination["total_pages"])

	links := pagination["links"].(map[string]any)
	assert.Contains(t, links["self"], "page=2")
	assert.Contains(t, links["previous"], "page=1")
	assert.NotContains(t, links, "next")
}

func TestGetPost(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	rec, body := env.get(t, "/api/posts/"+env.post.ID.String()+"?with=author")

	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, env.post.ID.String(), data["id"])
	assert.Equal(t, "hello-world", data["slug"])
	assert.Equal(t, "Hello, World", data["title"])

	authorData := data["author"].(map[string]any)["data"].(map[string]any)
	assert.Equal(t, env.author.ID.String(), authorData["id"])
}

func TestGetPostErrors(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantError  string
	}{
		{
			name:       "unknown post",
			url:        "/api/posts/00000000-0000-0000-0000-000000000001",
			wantStatus: http.StatusNotFound,
			wantError:  "Post not found",
		},
		{
			name:       "invalid uuid",
			url:        "/api/posts/not-a-uuid",
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid post ID",
		},
		{
			name:       "malformed selection",
			url:        "/api/posts?with=author,,comments",
			wantStatus: http.StatusBadRequest,
			wantError:  "Malformed include expression",
		},
		{
			name:       "undeclared include",
			url:        "/api/posts?with=tags",
			wantStatus: http.StatusBadRequest,
			wantError:  "Unknown include",
		},
		{
			name:       "selection too deep",
			url:        "/api/posts?with=comments.author.posts.comments",
			wantStatus: http.StatusBadRequest,
			wantError:  "Include expression is too deep",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec, body := env.get(t, tc.url)
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantError, body["error"])
		})
	}
}
