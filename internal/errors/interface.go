package errors

// ErrorCode is a stable, machine-readable identifier for an error condition.
// Packages declare their own codes prefixed with the package name.
type ErrorCode string

// Error is a domain error carrying a code, an optional human message,
// optional structured data and an optional wrapped cause.
type Error interface {
	error
	Code() ErrorCode
	WithMessage(msg string) Error
	WithData(data any) Error
	GetData() any
	Unwrap() error
}

// Factory creates domain errors. Obtain one with New().
type Factory interface {
	New(code ErrorCode) Error
	Wrap(code ErrorCode, err error) Error
	WithMessage(code ErrorCode, msg string) Error
	WithData(code ErrorCode, data any) Error
}
