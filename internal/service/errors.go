package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	ErrRecordNotFound = errors.New("record not found")

	// ErrNoValidRows is returned by an import whose data rows all failed to
	// parse.
	ErrNoValidRows = errors.New("no valid rows found in CSV")

	// ErrNothingToImport is returned by an import whose parsed rows are all
	// already in the diary.
	ErrNothingToImport = errors.New("nothing new to import")

	ErrMissingDatetimeColumn = errors.New("CSV header has no datetime column")

	// ErrNoDataToExport is returned by an export of an empty diary.
	ErrNoDataToExport = errors.New("no data to export")

	ErrNotEnoughRecords     = errors.New("not enough records for analysis")
	ErrAssistantUnavailable = errors.New("assistant unavailable")

	ErrCannotDeleteSelf = errors.New("admin cannot delete their own account")
)
