package vitals

import (
	"context"

	"nodevitals/internal/errors"
	"nodevitals/internal/hoststats"
)

type system struct {
	cfg    Config
	source hoststats.Source
}

// New builds a System from static configuration and a host stats
// source. The configuration is copied and stays immutable for the
// lifetime of the System.
func New(cfg Config, source hoststats.Source) (System, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, errFactory.WithMessage(errors.ErrInvalidArgument, "host stats source is required")
	}

	return &system{cfg: cfg, source: source}, nil
}

// ScrapeMetrics builds a fresh snapshot and runs the probe pipeline.
// On any probe failure the snapshot is discarded and only the error
// is returned.
func (s *system) ScrapeMetrics(ctx context.Context) (MetricsSnapshot, error) {
	snapshot := NewSnapshot(s.cfg)
	if err := snapshot.calculate(ctx, s.source); err != nil {
		return MetricsSnapshot{}, err
	}

	return snapshot, nil
}
