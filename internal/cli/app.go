// Package cli implements the interactive menu shell of the space data CLI.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/spacedata/internal/config"
	"github.com/dmitrijs2005/spacedata/internal/cryptox"
	"github.com/dmitrijs2005/spacedata/internal/logging"
	"github.com/dmitrijs2005/spacedata/internal/nasa"
	"github.com/dmitrijs2005/spacedata/internal/repositories/users"
	"github.com/dmitrijs2005/spacedata/internal/services"
)

// dataGateway is the boundary to the remote astronomical data APIs.
// The real nasa.Client satisfies it; tests can provide a stub.
type dataGateway interface {
	FetchNEOFeed(ctx context.Context, startDate, endDate string) ([]nasa.NearEarthObject, error)
	FetchSmallBody(ctx context.Context, designation string) (*nasa.SmallBody, error)
}

// App wires the authentication service and the data gateway behind the
// interactive menus. One App serves one synchronous user session; nothing in
// it is safe for concurrent use.
type App struct {
	config      *config.Config
	authService services.AuthService
	gateway     dataGateway
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	userEmail   string
}

// NewApp builds the application from cfg: logger with a per-process session
// id, CSV-backed credential store, bcrypt hasher, auth service and the NASA
// gateway client.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo).With("session", uuid.NewString())

	repo := users.NewCSVRepository(cfg.StorePath)
	hasher := cryptox.NewBcryptHasher()

	authService, err := services.NewAuthService(ctx, repo, hasher, cfg.LoginAttemptsLimit, log)
	if err != nil {
		return nil, err
	}

	return &App{
		config:      cfg,
		authService: authService,
		gateway:     nasa.NewClient(cfg, log),
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.userEmail != ""
}
