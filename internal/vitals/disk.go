package vitals

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"nodevitals/internal/errors"
)

// readDirBatchSize bounds how many entries are listed between
// cancellation checks.
const readDirBatchSize = 64

// DiskMetrics approximates the node's storage footprint: the summed
// size of the regular files at the top level of the configured
// directory. The path is set at construction and never mutated.
type DiskMetrics struct {
	BlockStorageSize uint64 `json:"block_storage_size" msgpack:"block_storage_size"`
	BlockStoragePath string `json:"block_storage_path" msgpack:"block_storage_path"`
}

// calculate walks the configured directory and replaces
// BlockStorageSize with the sum of the top-level regular file sizes.
// Subdirectories are not recursed into. The directory handle is
// released on every exit path.
func (d *DiskMetrics) calculate(ctx context.Context) error {
	errFactory := errors.New()

	if err := ctx.Err(); err != nil {
		return errFactory.Wrap(ErrScrapeCancelled, err)
	}

	dir, err := os.Open(d.BlockStoragePath)
	if err != nil {
		return errFactory.Wrap(ErrDirectoryUnreadable, err).WithData(d.BlockStoragePath)
	}
	defer dir.Close()

	info, err := dir.Stat()
	if err != nil {
		return errFactory.Wrap(ErrDirectoryUnreadable, err).WithData(d.BlockStoragePath)
	}
	if !info.IsDir() {
		return errFactory.WithMessage(ErrDirectoryUnreadable, "not a directory").WithData(d.BlockStoragePath)
	}

	var total uint64

	for {
		if err := ctx.Err(); err != nil {
			return errFactory.Wrap(ErrScrapeCancelled, err)
		}

		entries, readErr := dir.ReadDir(readDirBatchSize)
		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}

			entryInfo, err := entry.Info()
			if err != nil {
				return errFactory.Wrap(ErrMetadataUnreadable, err).
					WithData(filepath.Join(d.BlockStoragePath, entry.Name()))
			}

			total += uint64(entryInfo.Size())
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}

			return errFactory.Wrap(ErrEntryUnreadable, readErr).WithData(d.BlockStoragePath)
		}
	}

	d.BlockStorageSize = total

	return nil
}
