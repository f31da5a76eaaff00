// Package netx contains small HTTP networking helpers shared by the client.
package netx

import (
	"context"
	"net/http"
	"time"
)

// DefaultProbeTimeout bounds a single connectivity probe.
const DefaultProbeTimeout = 2 * time.Second

// IsOnline reports whether url answers an HTTP request within timeout.
// Any HTTP response counts as reachable, including error statuses: the probe
// answers "is the network path up", not "is the API healthy". A timeout of
// zero falls back to DefaultProbeTimeout.
func IsOnline(ctx context.Context, url string, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return true
}
