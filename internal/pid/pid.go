// Package pid guards against running two agents on the same node.
package pid

import (
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	"nodevitals/internal/errors"
)

const pidFile = "nodevitals.pid"

func path() string {
	return filepath.Join(os.TempDir(), pidFile)
}

// Write records the current process ID. It fails with
// errors.ErrAlreadyRunning when a live process holds the file.
func Write() error {
	errFactory := errors.New()

	if bytes, err := os.ReadFile(path()); err == nil {
		oldPid, err := strconv.Atoi(string(bytes))
		if err != nil {
			return errFactory.Wrap(errors.ErrInternal, err)
		}

		process, err := os.FindProcess(oldPid)
		if err != nil {
			return errFactory.Wrap(errors.ErrInternal, err)
		}

		// Signal 0 probes for liveness without delivering anything.
		if err := process.Signal(syscall.Signal(0)); err == nil {
			return errFactory.WithData(errors.ErrAlreadyRunning, oldPid)
		}
	}

	if err := os.WriteFile(path(), []byte(strconv.Itoa(os.Getpid())), 0o600); err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

// Remove deletes the PID file. A missing file is not an error.
func Remove() error {
	errFactory := errors.New()

	if err := os.Remove(path()); err != nil && !os.IsNotExist(err) {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}
