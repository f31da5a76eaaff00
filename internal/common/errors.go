// Package common defines shared constants and sentinel errors used across
// TailorSync components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")

	// Model-level errors.
	ErrUnknownCollection = errors.New("unknown collection")

	// Sync engine errors. Expected failure modes (offline, rejected payload)
	// are reported as structured results, not as errors; these cover the
	// conditions where a cycle never started.
	ErrSyncInProgress = errors.New("sync already in progress")
)
