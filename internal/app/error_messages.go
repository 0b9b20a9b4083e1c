// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing messages shared by the DiaCompanion
// HTTP handlers and the CLI.
//
// All Msg* constants are written into HTTP error bodies or printed by the
// client to describe the outcome of an operation. Keeping them in one place
// keeps the wording consistent across the API.
package app

const (
	// MsgInvalidJSON is returned when a request body is not valid JSON.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request is well-formed but
	// carries data the operation cannot accept.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgValidationFailed accompanies per-field validation messages.
	MsgValidationFailed = "validation failed"

	// MsgRequestTooLarge is returned when a body exceeds its size limit.
	MsgRequestTooLarge = "request body is too large"

	MsgInvalidEmailPassword = "invalid email/password"
	MsgUserAlreadyExists    = "user with this email already exists"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgAdminOnly        = "administrator role required"
	MsgCannotDeleteSelf = "administrators cannot delete their own account"

	MsgRecordNotFound = "record not found"

	// import
	MsgNothingToImport       = "nothing to import: every record is already in the diary"
	MsgNoValidRows           = "the file has no valid rows"
	MsgMissingDatetimeColumn = "the file has no datetime column"

	MsgNoDataToExport = "no data to export"

	MsgNotEnoughRecords     = "at least 3 diary records are needed for an analysis"
	MsgAssistantUnavailable = "the assistant is unavailable, try again later"

	// MsgStoreUnavailable is returned while the document store cannot be
	// reached.
	MsgStoreUnavailable = "storage is temporarily unavailable"

	MsgRequestTimeout      = "request timed out"
	MsgInternalServerError = "internal server error"
)
