package vitals

import (
	"context"

	"nodevitals/internal/errors"
	"nodevitals/internal/hoststats"
)

// CPUMetrics holds diagnostic strings describing processor state.
// The formatted forms are stable; see hoststats for the formatters.
type CPUMetrics struct {
	Frequency string `json:"frequency" msgpack:"frequency"`
	Load      string `json:"load" msgpack:"load"`
	Time      string `json:"time" msgpack:"time"`
}

// calculate populates the CPU fields from the host stats source.
// Any query failure propagates; no field is left half-updated visible
// to callers because failed snapshots are discarded.
func (c *CPUMetrics) calculate(ctx context.Context, source hoststats.Source) error {
	errFactory := errors.New()

	if err := ctx.Err(); err != nil {
		return errFactory.Wrap(ErrScrapeCancelled, err)
	}

	freq, err := source.CPUFrequency(ctx)
	if err != nil {
		return errFactory.Wrap(ErrOsQueryFailed, err)
	}
	c.Frequency = freq.String()

	load, err := source.CPULoad(ctx)
	if err != nil {
		return errFactory.Wrap(ErrOsQueryFailed, err)
	}
	c.Load = load.String()

	times, err := source.CPUTimes(ctx)
	if err != nil {
		return errFactory.Wrap(ErrOsQueryFailed, err)
	}
	c.Time = times.String()

	return nil
}
