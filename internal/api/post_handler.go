package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mnavarrocarter/rest-bundle/internal/api/shared"
	"github.com/mnavarrocarter/rest-bundle/internal/domain"
	"github.com/mnavarrocarter/rest-bundle/internal/resource"
	"github.com/mnavarrocarter/rest-bundle/internal/store"
	"github.com/mnavarrocarter/rest-bundle/internal/transform"
)

// PostPreloader batch-loads the relation graph of a page of posts ahead of
// resolution, so that resolving N posts does not issue N queries per include.
type PostPreloader interface {
	PreloadPosts(ctx context.Context, posts []*domain.Post, tree *transform.Tree) (*store.Preloaded, error)
}

// PostHandler handles post resource API requests.
type PostHandler struct {
	postStore store.PostStore
	resolver  *transform.Resolver
	preloader PostPreloader
	logger    *slog.Logger
}

// NewPostHandler creates a new PostHandler with the given dependencies.
// The preloader is optional; when nil, includes are loaded lazily per entity.
func NewPostHandler(
	postStore store.PostStore,
	resolver *transform.Resolver,
	preloader PostPreloader,
	logger *slog.Logger,
) *PostHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostHandler{
		postStore: postStore,
		resolver:  resolver,
		preloader: preloader,
		logger:    logger.With(slog.String("component", "post_handler")),
	}
}

// List handles GET /api/posts. It returns one page of posts, newest first,
// as a collection envelope with pagination metadata. The with query parameter
// selects the relations to embed.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	tree, ok := parseSelection(w, r)
	if !ok {
		return
	}
	params := parsePageParams(r)

	posts, total, err := h.postStore.List(r.Context(), params.offset(), params.perPage)
	if err != nil {
		h.logger.Error("failed to list posts", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	ctx := r.Context()
	if h.preloader != nil && !tree.Empty() {
		preloaded, err := h.preloader.PreloadPosts(ctx, posts, tree)
		if err != nil {
			h.logger.Error("failed to preload post relations", slog.String("error", err.Error()))
			HandleAPIError(w, r, err, "")
			return
		}
		ctx = store.WithPreloaded(ctx, preloaded)
	}

	entities := make([]any, len(posts))
	for i, post := range posts {
		entities[i] = post
	}

	nodes, err := h.resolver.ResolveCollection(ctx, resource.KindPost, entities, tree)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	doc := transform.NewCollectionDocument(nodes, &transform.Meta{
		Pagination: buildPagination(r, params, len(nodes), total),
	})
	shared.RespondWithJSON(w, r, http.StatusOK, doc)
}

// Get handles GET /api/posts/{id}. It returns a single post as an item
// envelope, with the relations selected by the with query parameter embedded.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid post ID")
		return
	}

	tree, ok := parseSelection(w, r)
	if !ok {
		return
	}

	post, err := h.postStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	ctx := r.Context()
	if h.preloader != nil && !tree.Empty() {
		preloaded, err := h.preloader.PreloadPosts(ctx, []*domain.Post{post}, tree)
		if err != nil {
			h.logger.Error("failed to preload post relations", slog.String("error", err.Error()))
			HandleAPIError(w, r, err, "")
			return
		}
		ctx = store.WithPreloaded(ctx, preloaded)
	}

	node, err := h.resolver.Resolve(ctx, resource.KindPost, post, tree)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, transform.NewItemDocument(node))
}

// parseSelection reads the with query parameter into a selection tree,
// writing a 400 response on malformed input.
func parseSelection(w http.ResponseWriter, r *http.Request) (*transform.Tree, bool) {
	tree, err := transform.ParseSelection(r.URL.Query().Get("with"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return nil, false
	}
	return tree, true
}
