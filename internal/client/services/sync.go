package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tailorapp898-afk/tailorsync/internal/client/client"
	"github.com/tailorapp898-afk/tailorsync/internal/client/models"
	"github.com/tailorapp898-afk/tailorsync/internal/client/repositories/records"
	"github.com/tailorapp898-afk/tailorsync/internal/client/repositories/settings"
	"github.com/tailorapp898-afk/tailorsync/internal/common"
	"github.com/tailorapp898-afk/tailorsync/internal/logging"
)

// Transport sends the full local snapshot to the remote authority. It is
// supplied by the caller per push so credentials stay out of the engine.
// Network and credential failures must surface as errors, never as a
// false-flagged response.
type Transport func(ctx context.Context, payload map[models.Collection][]models.Record) (*client.PushResponse, error)

// OnlineFunc reports whether the device currently has connectivity. Consulted
// once at the start of a push.
type OnlineFunc func(ctx context.Context) bool

// PushReason distinguishes push failure modes so the UI can word its message:
// nothing was sent (offline, no-transport), sent but lost (network-error), or
// sent but rejected (sync-failed).
type PushReason string

const (
	PushReasonNone         PushReason = ""
	PushReasonNoTransport  PushReason = "no-transport"
	PushReasonOffline      PushReason = "offline"
	PushReasonNetworkError PushReason = "network-error"
	PushReasonSyncFailed   PushReason = "sync-failed"
)

// PushResult reports the outcome of one push cycle. On any non-success the
// local store is untouched and Unsynced carries the collected payload
// unchanged, ready for retry or inspection.
type PushResult struct {
	Success  bool
	Reason   PushReason
	Unsynced map[models.Collection][]models.Record
	Response *client.PushResponse
	Marked   int
	Err      error
}

// PullSource reports which path a pull took.
type PullSource string

const (
	// PullSourceServer: the remote snapshot had business records and the
	// local collections were replaced with it.
	PullSourceServer PullSource = "server"
	// PullSourceSample: remote was empty or unreachable and the local store
	// was empty too, so the seed loader ran.
	PullSourceSample PullSource = "sample"
	// PullSourceNone: remote had nothing to offer but local data exists;
	// nothing was changed.
	PullSourceNone PullSource = "none"
)

// PullResult reports the outcome of one pull cycle.
type PullResult struct {
	Source  PullSource
	Applied int
	// FetchErr is set when the remote fetch failed and the fallback path ran.
	// It is informational: a failed fetch is a normal operating mode.
	FetchErr error
}

// SyncService orchestrates both directions of synchronization between the
// local store and the remote authority.
type SyncService interface {
	// SyncUp collects the full local snapshot across every collection, sends
	// it through transport, and marks the confirmed records synced. Aborts
	// (offline, no transport) and failures are side-effect-free.
	SyncUp(ctx context.Context, transport Transport) (*PushResult, error)

	// SyncDown fetches the remote snapshot with the given token and replaces
	// the local collections with it, or falls back to sample data when the
	// remote has no business records and the local store is empty.
	SyncDown(ctx context.Context, token, ownerID string) (*PullResult, error)

	// LastSync returns the completion time of the last successful push, or
	// the zero time when none is recorded. Display-only.
	LastSync(ctx context.Context) (time.Time, error)
}

type syncService struct {
	store    StoreService
	recs     records.Repository
	settings settings.Repository
	seeder   SeedLoader
	remote   client.Client
	online   OnlineFunc
	log      logging.Logger
	now      func() time.Time

	mu      sync.Mutex
	pushing bool
	pulling bool
}

func NewSyncService(
	store StoreService,
	recs records.Repository,
	sets settings.Repository,
	seeder SeedLoader,
	remote client.Client,
	online OnlineFunc,
	log logging.Logger,
) SyncService {
	return &syncService{
		store:    store,
		recs:     recs,
		settings: sets,
		seeder:   seeder,
		remote:   remote,
		online:   online,
		log:      log,
		now:      time.Now,
	}
}

func (s *syncService) begin(flag *bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if *flag {
		return common.ErrSyncInProgress
	}
	*flag = true
	return nil
}

func (s *syncService) end(flag *bool) {
	s.mu.Lock()
	*flag = false
	s.mu.Unlock()
}

// collect reads the full contents of every known collection, users included:
// the push payload is a whole-store snapshot, not a delta. The remote is
// idempotent under re-submission of already-synced records.
func (s *syncService) collect(ctx context.Context) (map[models.Collection][]models.Record, error) {
	payload := make(map[models.Collection][]models.Record, len(models.Collections()))
	for _, col := range models.Collections() {
		items, err := s.store.List(ctx, col)
		if err != nil {
			return nil, fmt.Errorf("failed to collect %s: %w", col, err)
		}
		payload[col] = items
	}
	return payload, nil
}

func (s *syncService) SyncUp(ctx context.Context, transport Transport) (*PushResult, error) {
	if err := s.begin(&s.pushing); err != nil {
		return nil, err
	}
	defer s.end(&s.pushing)

	payload, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}

	if transport == nil {
		s.log.Warn(ctx, "push aborted: no transport supplied")
		return &PushResult{Reason: PushReasonNoTransport, Unsynced: payload}, nil
	}
	if s.online != nil && !s.online(ctx) {
		s.log.Warn(ctx, "push aborted: offline")
		return &PushResult{Reason: PushReasonOffline, Unsynced: payload}, nil
	}

	resp, err := transport(ctx, payload)
	if err != nil {
		s.log.Error(ctx, "push transport failed", "error", err)
		return &PushResult{Reason: PushReasonNetworkError, Unsynced: payload, Err: err}, nil
	}
	if resp == nil || !resp.Success {
		s.log.Error(ctx, "push rejected by server")
		return &PushResult{Reason: PushReasonSyncFailed, Unsynced: payload, Response: resp}, nil
	}

	// Reconcile: flip only the records that were dirty at collection time.
	// Best-effort per record; a failed write is logged and skipped so one bad
	// row never stalls the rest.
	marked := 0
	for col, items := range payload {
		for i := range items {
			if items[i].Synced {
				continue
			}
			confirmed := items[i].Clone()
			confirmed.Synced = true
			confirmed.UpdatedAt = s.now()
			if err := s.recs.Update(ctx, col, &confirmed); err != nil {
				s.log.Error(ctx, "failed to mark record synced",
					"collection", col, "id", confirmed.ID, "error", err)
				continue
			}
			marked++
		}
	}

	if err := s.settings.Set(ctx, settings.KeyLastSyncTimestamp, s.now().UTC().Format(time.RFC3339)); err != nil {
		s.log.Warn(ctx, "failed to store last sync timestamp", "error", err)
	}

	s.log.Info(ctx, "push complete", "marked", marked)
	return &PushResult{Success: true, Response: resp, Marked: marked}, nil
}

// normalize maps backend response keys to canonical collection names and
// guarantees an entry for every known collection, empty when the backend sent
// nothing for it. Unknown keys are dropped.
func normalize(raw map[string][]models.Record) map[models.Collection][]models.Record {
	out := make(map[models.Collection][]models.Record, len(models.Collections()))
	for _, col := range models.Collections() {
		out[col] = []models.Record{}
	}
	for key, items := range raw {
		col, ok := models.NormalizeKey(key)
		if !ok {
			continue
		}
		out[col] = append(out[col], items...)
	}
	return out
}

func (s *syncService) SyncDown(ctx context.Context, token, ownerID string) (*PullResult, error) {
	if err := s.begin(&s.pulling); err != nil {
		return nil, err
	}
	defer s.end(&s.pulling)

	raw, fetchErr := s.remote.PullAll(ctx, token)
	if fetchErr == nil {
		snapshot := normalize(raw)

		total := 0
		for _, col := range models.BusinessCollections() {
			total += len(snapshot[col])
		}

		if total > 0 {
			if err := s.store.BulkReplace(ctx, snapshot); err != nil {
				return nil, err
			}
			s.log.Info(ctx, "pull complete", "records", total)
			return &PullResult{Source: PullSourceServer, Applied: total}, nil
		}
		s.log.Warn(ctx, "server returned zero business records, keeping local data")
	} else {
		s.log.Error(ctx, "pull fetch failed", "error", fetchErr)
	}

	// Fallback path. Never wipe existing local data over an empty or
	// unreachable remote: seed only an empty store.
	local, err := s.store.CountBusiness(ctx)
	if err != nil {
		return nil, err
	}
	if local > 0 {
		return &PullResult{Source: PullSourceNone, FetchErr: fetchErr}, nil
	}

	if err := s.seeder.Load(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("failed to load sample data: %w", err)
	}
	s.log.Info(ctx, "sample data loaded", "ownerId", ownerID)
	return &PullResult{Source: PullSourceSample, FetchErr: fetchErr}, nil
}

func (s *syncService) LastSync(ctx context.Context) (time.Time, error) {
	value, err := s.settings.Get(ctx, settings.KeyLastSyncTimestamp)
	if err != nil || value == "" {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, nil
	}
	return t, nil
}
