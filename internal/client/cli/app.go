package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	storage "github.com/tailorapp898-afk/tailorsync/internal/client"
	"github.com/tailorapp898-afk/tailorsync/internal/client/client"
	"github.com/tailorapp898-afk/tailorsync/internal/client/config"
	"github.com/tailorapp898-afk/tailorsync/internal/client/services"
	"github.com/tailorapp898-afk/tailorsync/internal/logging"
	"github.com/tailorapp898-afk/tailorsync/internal/netx"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

type App struct {
	config  *config.Config
	repos   *storage.Repositories
	remote  client.Client
	store   services.StoreService
	syncer  services.SyncService
	session services.SessionService
	seeder  services.SeedLoader
	logger  logging.Logger

	token  string
	userID string
	Mode   Mode
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	repos, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	remote := client.NewHTTPClient(c.ServerURL)
	logger := logging.NewSlogLogger(slog.Default())

	store := services.NewStoreService(repos.Records)
	session := services.NewSessionService(repos.Settings)
	seeder := services.NewSeedService(repos.Records)

	online := func(ctx context.Context) bool {
		return netx.IsOnline(ctx, c.ServerURL, netx.DefaultProbeTimeout)
	}
	syncer := services.NewSyncService(store, repos.Records, repos.Settings, seeder, remote, online, logger)

	app := &App{
		config:  c,
		repos:   repos,
		remote:  remote,
		store:   store,
		syncer:  syncer,
		session: session,
		seeder:  seeder,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
	}
	app.restoreSession(ctx)

	return app, nil
}

// restoreSession picks up the token persisted by a previous run so the user
// does not have to log in again while it is still valid.
func (a *App) restoreSession(ctx context.Context) {
	expired, err := a.session.Expired(ctx)
	if err != nil || expired {
		return
	}
	token, err := a.session.Token(ctx)
	if err != nil || token == "" {
		return
	}
	userID, err := a.session.UserID(ctx)
	if err != nil {
		return
	}
	a.token = token
	a.userID = userID
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.repos.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.remote.Ping(ctx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
