package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/tailorapp898-afk/tailorsync/internal/client/client"
	"github.com/tailorapp898-afk/tailorsync/internal/client/models"
	"github.com/tailorapp898-afk/tailorsync/internal/client/services"
)

// Sync pushes the full local snapshot to the server and reports the outcome.
func (a *App) Sync(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first")
		return nil
	}

	transport := func(ctx context.Context, payload map[models.Collection][]models.Record) (*client.PushResponse, error) {
		return a.remote.PushAll(ctx, a.token, payload)
	}

	res, err := a.syncer.SyncUp(ctx, transport)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	switch res.Reason {
	case services.PushReasonNone:
		fmt.Printf("Sync complete, %d record(s) confirmed\n", res.Marked)
	case services.PushReasonOffline:
		fmt.Println("Offline, changes kept locally")
	case services.PushReasonNetworkError:
		fmt.Printf("Server unreachable: %v\n", res.Err)
	case services.PushReasonSyncFailed:
		msg := ""
		if res.Response != nil {
			msg = res.Response.Message
		}
		fmt.Printf("Server rejected the sync: %s\n", msg)
	default:
		fmt.Printf("Sync did not run (%s)\n", res.Reason)
	}
	return nil
}

// Load replaces local data with the server snapshot. When the server has no
// business data, local data is kept; an empty store is seeded with samples.
func (a *App) Load(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first")
		return nil
	}

	res, err := a.syncer.SyncDown(ctx, a.token, a.userID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if res.FetchErr != nil {
		log.Printf("fetch failed: %v", res.FetchErr)
	}

	switch res.Source {
	case services.PullSourceServer:
		fmt.Printf("Loaded %d record(s) from server\n", res.Applied)
	case services.PullSourceSample:
		fmt.Println("Server had no data, loaded the sample data set")
	case services.PullSourceNone:
		fmt.Println("Server had no data, kept local records")
	}
	return nil
}

// Seed replaces the business collections with the built-in sample data set.
func (a *App) Seed(ctx context.Context) error {
	if err := a.seeder.Load(ctx, a.userID); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println("Sample data loaded")
	return nil
}

// Status prints connectivity, session and sync information.
func (a *App) Status(ctx context.Context) error {
	fmt.Printf("Mode: %s\n", a.Mode)
	if a.isLoggedIn() {
		fmt.Printf("User: %s\n", a.userID)
	} else {
		fmt.Println("Not logged in")
	}

	n, err := a.store.CountBusiness(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Local records: %d\n", n)

	last, err := a.syncer.LastSync(ctx)
	if err != nil {
		return err
	}
	if last.IsZero() {
		fmt.Println("Never synced")
	} else {
		fmt.Printf("Last sync: %s\n", last.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}
