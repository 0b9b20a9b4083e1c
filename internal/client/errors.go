package client

import "errors"

var (
	errPasswordRequired = errors.New("password is required")
	errEmptyRecord      = errors.New("record needs glucose or both pressure values")
	errSessionExpired   = errors.New("session expired, run login again")
	errNothingToChange  = errors.New("give at least one field to change")
	errRecordNotFound   = errors.New("record not found")
	errNoDataToExport   = errors.New("no data to export")
	errAdminOnly        = errors.New("administrator role required")
	errEmptyMessage     = errors.New("message is empty")
	errUnknownLabType   = errors.New("lab result type must be blood, urine or other")

	errArchiveItemNotFound = errors.New("no such item in the archive")
)
