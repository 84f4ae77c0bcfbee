package vitals

import "nodevitals/internal/errors"

// Error codes specific to the vitals package
const (
	// Probe errors
	ErrOsQueryFailed       = errors.ErrorCode("vitals_os_query_failed")
	ErrDirectoryUnreadable = errors.ErrorCode("vitals_directory_unreadable")
	ErrEntryUnreadable     = errors.ErrorCode("vitals_entry_unreadable")
	ErrMetadataUnreadable  = errors.ErrorCode("vitals_metadata_unreadable")

	// Scrape errors
	ErrScrapeCancelled = errors.ErrorCode("vitals_scrape_cancelled")

	// Configuration errors
	ErrInvalidStoragePath = errors.ErrorCode("vitals_invalid_storage_path")

	// Serialization errors
	ErrEncodeFailed = errors.ErrorCode("vitals_encode_failed")
	ErrDecodeFailed = errors.ErrorCode("vitals_decode_failed")
)
