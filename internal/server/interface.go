// Package server exposes node health and metrics over HTTP. It is the
// transport collaborator around the vitals core: operators get JSON,
// monitoring collectors negotiate the compact binary encoding via the
// Accept header.
package server

import (
	"context"
	"net/http"
)

type Server interface {
	// Start serves until ctx is cancelled or the listener fails. On
	// cancellation in-flight requests are drained before returning.
	Start(ctx context.Context) error
	// Handler exposes the route table for tests and embedding.
	Handler() http.Handler
	// Health is the lifecycle state holder reported by GET /health.
	Health() *Health
}
