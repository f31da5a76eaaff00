// Package cli provides the interactive TailorSync command-line client.
//
// It wires configuration, local storage, the backend API client and an
// interactive REPL that supports online/offline operation. Typical flow:
// prompt for credentials, pull the server snapshot, start a background
// connectivity watcher, and execute user commands.
//
// Key features:
//   - Login / Logout (with offline fallback on a stored session)
//   - Add / List / Show / Delete records in any collection
//   - Sync local changes up, load the server snapshot down
//   - Seed sample data into an empty store
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
