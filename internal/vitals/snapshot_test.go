package vitals_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nodevitals/internal/errors"
	"nodevitals/internal/vitals"
)

func sampleSnapshot() vitals.MetricsSnapshot {
	return vitals.MetricsSnapshot{
		CPU: vitals.CPUMetrics{
			Frequency: "3200 MHz (8 logical cores)",
			Load:      "load average: 0.50 0.25 0.10",
			Time:      "user 100.0s system 50.0s idle 1000.0s",
		},
		Memory: vitals.MemoryMetrics{
			Memory: "used 500 of 2000 bytes (25.0%)",
			Swap:   "used 100 of 1000 bytes (10.0%)",
		},
		Disk: vitals.DiskMetrics{
			BlockStorageSize: 30,
			BlockStoragePath: "/var/lib/nodevitals/blocks",
		},
	}
}

func TestNewSnapshotSeedsDiskPath(t *testing.T) {
	snapshot := vitals.NewSnapshot(vitals.Config{BlockStoragePath: "/srv/blocks"})

	assert.Equal(t, "/srv/blocks", snapshot.Disk.BlockStoragePath)
	assert.Equal(t, uint64(0), snapshot.Disk.BlockStorageSize)
	assert.Empty(t, snapshot.CPU.Frequency)
	assert.Empty(t, snapshot.Memory.Memory)
}

func TestSnapshotHumanReadableShape(t *testing.T) {
	data, err := json.Marshal(sampleSnapshot())
	require.NoError(t, err)

	// Key names and order are a wire contract.
	assert.Equal(t,
		`{"cpu":{"frequency":"3200 MHz (8 logical cores)",`+
			`"load":"load average: 0.50 0.25 0.10",`+
			`"time":"user 100.0s system 50.0s idle 1000.0s"},`+
			`"memory":{"memory":"used 500 of 2000 bytes (25.0%)",`+
			`"swap":"used 100 of 1000 bytes (10.0%)"},`+
			`"disk":{"block_storage_size":30,`+
			`"block_storage_path":"/var/lib/nodevitals/blocks"}}`,
		string(data))
}

func TestSnapshotHumanReadableRoundTrip(t *testing.T) {
	original := sampleSnapshot()

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded vitals.MetricsSnapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestSnapshotBinaryRoundTrip(t *testing.T) {
	original := sampleSnapshot()

	data, err := original.EncodeBinary()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := vitals.DecodeBinary(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeBinaryRejectsGarbage(t *testing.T) {
	_, err := vitals.DecodeBinary([]byte{0xc1})
	require.Error(t, err)
	assert.Equal(t, vitals.ErrDecodeFailed, errors.CodeOf(err))
}
