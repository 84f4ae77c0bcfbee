package hoststats

import "nodevitals/internal/errors"

// Error codes specific to the hoststats package
const (
	ErrCPUQueryFailed    = errors.ErrorCode("hoststats_cpu_query_failed")
	ErrMemoryQueryFailed = errors.ErrorCode("hoststats_memory_query_failed")
	ErrNoCPUReported     = errors.ErrorCode("hoststats_no_cpu_reported")
)
