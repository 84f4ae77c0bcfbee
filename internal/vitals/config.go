package vitals

import "nodevitals/internal/errors"

// Config holds the static inputs a System needs. It is copied at
// construction time and never mutated afterwards.
type Config struct {
	// BlockStoragePath is the directory whose top-level file sizes
	// approximate the node's storage footprint.
	BlockStoragePath string
}

// Validate checks the configuration for usability.
func (c Config) Validate() error {
	if c.BlockStoragePath == "" {
		return errors.New().WithMessage(ErrInvalidStoragePath, "block storage path is required")
	}

	return nil
}
