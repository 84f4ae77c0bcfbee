package vitals

import (
	"context"

	"nodevitals/internal/errors"
	"nodevitals/internal/hoststats"
)

// MemoryMetrics holds diagnostic strings describing main-memory and
// swap usage.
type MemoryMetrics struct {
	Memory string `json:"memory" msgpack:"memory"`
	Swap   string `json:"swap" msgpack:"swap"`
}

// calculate populates the memory fields from the host stats source.
func (m *MemoryMetrics) calculate(ctx context.Context, source hoststats.Source) error {
	errFactory := errors.New()

	if err := ctx.Err(); err != nil {
		return errFactory.Wrap(ErrScrapeCancelled, err)
	}

	vm, err := source.VirtualMemory(ctx)
	if err != nil {
		return errFactory.Wrap(ErrOsQueryFailed, err)
	}
	m.Memory = vm.String()

	swap, err := source.SwapMemory(ctx)
	if err != nil {
		return errFactory.Wrap(ErrOsQueryFailed, err)
	}
	m.Swap = swap.String()

	return nil
}
