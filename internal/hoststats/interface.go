// Package hoststats abstracts host OS metric queries for testing.
package hoststats

import (
	"context"
	"fmt"
)

// Source answers point-in-time host resource queries. The production
// implementation reads from the running OS; tests substitute a fake.
type Source interface {
	// CPUFrequency reports the advertised clock and logical core count.
	CPUFrequency(ctx context.Context) (FrequencyStat, error)
	// CPULoad reports the 1, 5 and 15 minute load averages.
	CPULoad(ctx context.Context) (LoadStat, error)
	// CPUTimes reports cumulative CPU time split by mode.
	CPUTimes(ctx context.Context) (TimesStat, error)
	// VirtualMemory reports main-memory usage.
	VirtualMemory(ctx context.Context) (MemoryStat, error)
	// SwapMemory reports swap usage.
	SwapMemory(ctx context.Context) (SwapStat, error)
}

// FrequencyStat describes the CPU clock.
type FrequencyStat struct {
	Mhz   float64
	Cores int
}

func (f FrequencyStat) String() string {
	return fmt.Sprintf("%.0f MHz (%d logical cores)", f.Mhz, f.Cores)
}

// LoadStat holds the classic load averages.
type LoadStat struct {
	Load1  float64
	Load5  float64
	Load15 float64
}

func (l LoadStat) String() string {
	return fmt.Sprintf("load average: %.2f %.2f %.2f", l.Load1, l.Load5, l.Load15)
}

// TimesStat holds cumulative CPU time in seconds per mode.
type TimesStat struct {
	User   float64
	System float64
	Idle   float64
}

func (t TimesStat) String() string {
	return fmt.Sprintf("user %.1fs system %.1fs idle %.1fs", t.User, t.System, t.Idle)
}

// MemoryStat holds main-memory usage in bytes.
type MemoryStat struct {
	TotalBytes     uint64
	UsedBytes      uint64
	AvailableBytes uint64
}

// UsedPercent reports used memory as a percentage of total.
// Hosts reporting a zero total yield zero rather than NaN.
func (m MemoryStat) UsedPercent() float64 {
	if m.TotalBytes == 0 {
		return 0
	}

	return float64(m.UsedBytes) / float64(m.TotalBytes) * 100
}

func (m MemoryStat) String() string {
	return fmt.Sprintf("used %d of %d bytes (%.1f%%)", m.UsedBytes, m.TotalBytes, m.UsedPercent())
}

// SwapStat holds swap usage in bytes.
type SwapStat struct {
	TotalBytes uint64
	UsedBytes  uint64
	FreeBytes  uint64
}

// UsedPercent reports used swap as a percentage of total.
// Hosts without swap yield zero rather than NaN.
func (s SwapStat) UsedPercent() float64 {
	if s.TotalBytes == 0 {
		return 0
	}

	return float64(s.UsedBytes) / float64(s.TotalBytes) * 100
}

func (s SwapStat) String() string {
	return fmt.Sprintf("used %d of %d bytes (%.1f%%)", s.UsedBytes, s.TotalBytes, s.UsedPercent())
}
