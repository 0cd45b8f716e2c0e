// Package cli implements the interactive portal client: a small REPL over
// the API client and the session store.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"

	"github.com/mkresic/karijera/internal/client/api"
	"github.com/mkresic/karijera/internal/client/config"
	"github.com/mkresic/karijera/internal/client/services"
	"github.com/mkresic/karijera/internal/client/storage"
	"github.com/mkresic/karijera/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires configuration, the local database, the API client, and the
// session store together behind the REPL commands.
type App struct {
	config *config.Config
	db     *sql.DB
	client api.Client
	store  *services.SessionStore
	log    logging.Logger
	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	httpc := &http.Client{Timeout: c.HTTPTimeout}
	client := api.NewHTTPClient(c.APIBaseURL, httpc, &services.StoredTokenSource{DB: db}, log)
	store := services.NewSessionStore(client, db, log)

	return &App{
		config: c,
		db:     db,
		client: client,
		store:  store,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the cached session (if any) and enters the REPL. The restore
// must finish before the first prompt so the user is never shown a
// logged-out prompt while actually being logged in.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	if err := a.store.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	a.Root(ctx)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}
