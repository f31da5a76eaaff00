package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/tailorapp898-afk/tailorsync/internal/client/client"
	"github.com/tailorapp898-afk/tailorsync/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and authenticates against the
// backend. On success the session is persisted, the mode switches to
// ModeOnline and an initial pull replaces local data with the server
// snapshot (or seeds sample data into an empty store).
//
// If the server is unavailable and a previous session is still stored, the
// client stays usable in ModeOffline: local data can be browsed and edited,
// and the next sync picks the changes up. Without a stored session the mode
// becomes ModeDisabled.
//
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.remote.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			log.Printf("Server unavailable, trying offline session...")
			if a.token != "" {
				log.Printf("Using stored session")
				a.setMode(ModeOffline)
				return nil
			}
			a.setMode(ModeDisabled)
			return nil
		}
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.token = sess.Token
	a.userID = sess.UserID
	if err := a.session.Save(ctx, sess); err != nil {
		log.Printf("error saving session: %s", err.Error())
	}
	a.setMode(ModeOnline)
	log.Printf("Login successful")

	return a.Load(ctx)
}

// Logout clears the stored session and empties the local store.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return err
	}
	if err := a.store.ClearAll(ctx); err != nil {
		return err
	}
	a.token = ""
	a.userID = ""
	return nil
}
