package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mnavarrocarter/rest-bundle/internal/api/shared"
	"github.com/mnavarrocarter/rest-bundle/internal/resource"
	"github.com/mnavarrocarter/rest-bundle/internal/store"
	"github.com/mnavarrocarter/rest-bundle/internal/transform"
)

// UserHandler handles user resource API requests.
type UserHandler struct {
	userStore store.UserStore
	resolver  *transform.Resolver
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userStore store.UserStore,
	resolver *transform.Resolver,
	logger *slog.Logger,
) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		userStore: userStore,
		resolver:  resolver,
		logger:    logger.With(slog.String("component", "user_handler")),
	}
}

// Get handles GET /api/users/{id}. The email field only appears when the
// authenticated viewer is the user themselves.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID")
		return
	}

	tree, ok := parseSelection(w, r)
	if !ok {
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	node, err := h.resolver.Resolve(r.Context(), resource.KindUser, user, tree)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, transform.NewItemDocument(node))
}
