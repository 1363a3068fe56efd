package customerrors

import "errors"

// Startup errors. Any of these aborts the process before it serves traffic.
var (
	ErrSourceUnavailable = errors.New("dataset source unavailable")
	ErrMalformedData     = errors.New("malformed dataset")
	ErrEmptyDataset      = errors.New("dataset contains no rows")
)

// Request errors. The messages are returned to clients verbatim.
var (
	ErrMissingParameters = errors.New("Missing parameters: Provide both start_date and end_date in YYYY-MM-DD format.")
	ErrInvalidDateFormat = errors.New("Invalid date format. Use YYYY-MM-DD.")
	ErrInvertedRange     = errors.New("start_date cannot be after end_date.")
	ErrRangeOutOfBounds  = errors.New("Requested dates exceed available dataset range.")
)
