// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound boundaries of the application.
//
// [ServerAdapter] is the HTTP/REST client the command-line tool uses to talk
// to the diary server ([NewHTTPServerAdapter]). Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so that callers
// can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
//
// [Assistant] is the generative AI boundary used by the server
// ([NewGenAIAssistant]). It is treated as an opaque remote endpoint: no
// retries and no caching.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/dia-companion/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the client side of the diary HTTP API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every authenticated
	// request.
	SetToken(token string)

	// Token returns the stored bearer token or "".
	Token() string

	// Register creates an account. It does not log in.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login authenticates and stores the returned bearer token.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Logout tells the server and forgets the token.
	Logout(ctx context.Context) error

	ListRecords(ctx context.Context) ([]models.HealthRecord, error)
	AddRecord(ctx context.Context, record models.HealthRecord) (models.HealthRecord, error)

	// EditRecord replaces the record with record.ID. The server archives
	// the previous version.
	EditRecord(ctx context.Context, record models.HealthRecord) (models.HealthRecord, error)
	DeleteRecord(ctx context.Context, id string) error

	// ImportRecords uploads a CSV file.
	ImportRecords(ctx context.Context, csv io.Reader) (models.ImportResult, error)

	// ExportRecords downloads the diary as CSV into w.
	ExportRecords(ctx context.Context, w io.Writer) error

	ListLabResults(ctx context.Context) ([]models.LabResult, error)
	AddLabResult(ctx context.Context, lab models.LabResult) (models.LabResult, error)
	DeleteLabResult(ctx context.Context, id string) error

	// Greeting returns the message that opens a conversation.
	Greeting(ctx context.Context) (models.ChatMessage, error)
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatMessage, error)

	// Analyze requests a trend analysis of the diary. The server archives
	// every analysis it returns.
	Analyze(ctx context.Context) (models.ArchivedAnalysis, error)
	AnalyzeImage(ctx context.Context, req models.ImageAnalysisRequest) (string, error)

	// Speak downloads a WAV rendition of text into w.
	Speak(ctx context.Context, text string, w io.Writer) error

	ListAnalyses(ctx context.Context) ([]models.ArchivedAnalysis, error)
	DeleteAnalysis(ctx context.Context, id string) error
	ListChats(ctx context.Context) ([]models.ArchivedChat, error)
	SaveChat(ctx context.Context, messages []models.ChatMessage) (models.ArchivedChat, error)
	DeleteChat(ctx context.Context, id string) error
	ListEdits(ctx context.Context) ([]models.ArchivedRecordEdit, error)
	DeleteEdit(ctx context.Context, id string) error

	// ListUsers and DeleteUser need the administrator role.
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, email string) error
}

// Assistant is the generative AI service.
type Assistant interface {
	// Chat continues a conversation and returns the reply text.
	Chat(ctx context.Context, history []models.ChatMessage, message string) (string, error)

	// AnalyzeTrends answers prompt with web grounding. images are attached
	// to the request.
	AnalyzeTrends(ctx context.Context, prompt string, images []models.InlineImage) (models.Analysis, error)

	AnalyzeImage(ctx context.Context, prompt string, image models.InlineImage) (string, error)

	// Speak returns 24 kHz mono 16-bit little-endian PCM.
	Speak(ctx context.Context, text string) ([]byte, error)
}
