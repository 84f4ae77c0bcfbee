package vitals

import (
	"context"

	"github.com/vmihailenco/msgpack/v5"

	"nodevitals/internal/errors"
	"nodevitals/internal/hoststats"
)

// MetricsSnapshot aggregates one scrape's worth of probe results.
// Each scrape builds a fresh snapshot; nothing is shared between
// concurrent scrapes. Field names and order are part of the wire
// contract: versions may append new metrics but never rename or
// reorder the existing ones.
type MetricsSnapshot struct {
	CPU    CPUMetrics    `json:"cpu" msgpack:"cpu"`
	Memory MemoryMetrics `json:"memory" msgpack:"memory"`
	Disk   DiskMetrics   `json:"disk" msgpack:"disk"`
}

// NewSnapshot builds an empty snapshot seeded with the configured
// block storage path. No I/O happens until calculate runs.
func NewSnapshot(cfg Config) MetricsSnapshot {
	return MetricsSnapshot{
		Disk: DiskMetrics{BlockStoragePath: cfg.BlockStoragePath},
	}
}

// calculate runs the probes in a fixed order: disk first because it is
// the most failure-prone and most expensive, then CPU, then memory.
// The first error aborts the scrape and the remaining probes are
// skipped.
func (m *MetricsSnapshot) calculate(ctx context.Context, source hoststats.Source) error {
	if err := m.Disk.calculate(ctx); err != nil {
		return err
	}

	if err := m.CPU.calculate(ctx, source); err != nil {
		return err
	}

	return m.Memory.calculate(ctx, source)
}

// EncodeBinary renders the snapshot in the compact wire encoding
// consumed by monitoring collectors.
func (m MetricsSnapshot) EncodeBinary() ([]byte, error) {
	data, err := msgpack.Marshal(m)
	if err != nil {
		return nil, errors.New().Wrap(ErrEncodeFailed, err)
	}

	return data, nil
}

// DecodeBinary parses a snapshot from its compact wire encoding.
func DecodeBinary(data []byte) (MetricsSnapshot, error) {
	var m MetricsSnapshot
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return MetricsSnapshot{}, errors.New().Wrap(ErrDecodeFailed, err)
	}

	return m, nil
}
