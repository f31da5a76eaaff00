package netx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsOnline_ReachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.True(t, IsOnline(context.Background(), srv.URL, time.Second))
}

func TestIsOnline_ErrorStatusStillCountsAsOnline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	assert.True(t, IsOnline(context.Background(), srv.URL, time.Second))
}

func TestIsOnline_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	assert.False(t, IsOnline(context.Background(), srv.URL, time.Second))
}

func TestIsOnline_BadURL(t *testing.T) {
	assert.False(t, IsOnline(context.Background(), "http://\x00bad", time.Second))
}
