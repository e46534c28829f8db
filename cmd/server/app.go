package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/mnavarrocarter/rest-bundle/internal/api"
	"github.com/mnavarrocarter/rest-bundle/internal/config"
	"github.com/mnavarrocarter/rest-bundle/internal/platform/postgres"
	"github.com/mnavarrocarter/rest-bundle/internal/resource"
	"github.com/mnavarrocarter/rest-bundle/internal/service/auth"
	"github.com/mnavarrocarter/rest-bundle/internal/store"
	"github.com/mnavarrocarter/rest-bundle/internal/transform"
)

// application bundles the wired dependencies of the server process.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	postStore    store.PostStore
	commentStore store.CommentStore

	resolver  *transform.Resolver
	preloader api.PostPreloader

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// newApplication wires every component of the server: database, stores,
// the transformer registry and resolver, and the authentication services.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	postStore := postgres.NewPostgresPostStore(db, logger)
	commentStore := postgres.NewPostgresCommentStore(db, logger)

	// The lazy loader always backs the registry; when eager loading is
	// enabled the handlers prefetch the relation graph per page and the
	// fallback wrapper serves entities from that cache first.
	loader := store.WithPreloadFallback(
		store.NewRelationLoader(userStore, postStore, commentStore),
	)

	registry := resource.NewRegistry(loader, resource.NewOwnerPolicy())
	resolver := transform.NewResolver(registry,
		transform.WithMaxDepth(cfg.Transform.MaxIncludeDepth))

	var preloader api.PostPreloader
	if cfg.Transform.EagerLoadIncludes {
		preloader = postgres.NewPreloader(db, logger)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		userStore:        userStore,
		postStore:        postStore,
		commentStore:     commentStore,
		resolver:         resolver,
		preloader:        preloader,
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}

// serve runs the HTTP server until the context is canceled or a shutdown
// signal arrives.
func (app *application) serve(ctx context.Context) error {
	return app.startHTTPServer(ctx, app.setupRouter())
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", slog.String("error", err.Error()))
		}
	}
}
