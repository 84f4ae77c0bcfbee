// Package vitals samples host-level resource metrics (CPU, memory,
// block storage) and assembles them into immutable point-in-time
// snapshots for exposure to operators and monitoring collectors.
//
// The package performs no logging and owns no transport; errors carry
// enough context for the caller to decide how to report them.
package vitals

import "context"

// System orchestrates metric scrapes against one node.
type System interface {
	// ScrapeMetrics runs a full scrape and returns the completed
	// snapshot. A snapshot is either fully populated or not returned
	// at all: the first probe failure aborts the scrape. Invocations
	// are independent and safe to run concurrently.
	ScrapeMetrics(ctx context.Context) (MetricsSnapshot, error)
}
