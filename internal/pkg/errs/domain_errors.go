package errs

import "errors"

// Sentinels shared across the command and query layers
var (
	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrUpstreamUnavailable     = errors.New("upstream service unavailable")
)
