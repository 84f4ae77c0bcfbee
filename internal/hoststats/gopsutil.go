package hoststats

import (
	"context"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"

	"nodevitals/internal/errors"
)

// systemSource reads metrics from the running host via gopsutil.
type systemSource struct{}

// New returns a Source backed by the host operating system.
func New() Source {
	return &systemSource{}
}

func (*systemSource) CPUFrequency(ctx context.Context) (FrequencyStat, error) {
	errFactory := errors.New()

	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return FrequencyStat{}, errFactory.Wrap(ErrCPUQueryFailed, err)
	}
	if len(infos) == 0 {
		return FrequencyStat{}, errFactory.New(ErrNoCPUReported)
	}

	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return FrequencyStat{}, errFactory.Wrap(ErrCPUQueryFailed, err)
	}

	return FrequencyStat{Mhz: infos[0].Mhz, Cores: cores}, nil
}

func (*systemSource) CPULoad(ctx context.Context) (LoadStat, error) {
	errFactory := errors.New()

	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return LoadStat{}, errFactory.Wrap(ErrCPUQueryFailed, err)
	}

	return LoadStat{Load1: avg.Load1, Load5: avg.Load5, Load15: avg.Load15}, nil
}

func (*systemSource) CPUTimes(ctx context.Context) (TimesStat, error) {
	errFactory := errors.New()

	times, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return TimesStat{}, errFactory.Wrap(ErrCPUQueryFailed, err)
	}
	if len(times) == 0 {
		return TimesStat{}, errFactory.New(ErrNoCPUReported)
	}

	total := times[0]

	return TimesStat{User: total.User, System: total.System, Idle: total.Idle}, nil
}

func (*systemSource) VirtualMemory(ctx context.Context) (MemoryStat, error) {
	errFactory := errors.New()

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryStat{}, errFactory.Wrap(ErrMemoryQueryFailed, err)
	}

	return MemoryStat{TotalBytes: vm.Total, UsedBytes: vm.Used, AvailableBytes: vm.Available}, nil
}

func (*systemSource) SwapMemory(ctx context.Context) (SwapStat, error) {
	errFactory := errors.New()

	sm, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return SwapStat{}, errFactory.Wrap(ErrMemoryQueryFailed, err)
	}

	return SwapStat{TotalBytes: sm.Total, UsedBytes: sm.Used, FreeBytes: sm.Free}, nil
}
