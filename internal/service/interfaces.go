// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the diary: record keeping,
// CSV import and export, lab results, archives, the AI assistant, accounts
// and administration. Services sit between the HTTP handlers and the stores
// and are the only place where validation and cross-store rules live.
package service

import (
	"context"
	"io"

	"github.com/MKhiriev/dia-companion/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DiaryService manages the diary records of one user at a time.
type DiaryService interface {
	// List returns the records newest first. It never fails.
	List(ctx context.Context, email string) []models.HealthRecord

	// Add validates record, assigns a fresh id and saves it.
	Add(ctx context.Context, email string, record models.HealthRecord) (models.HealthRecord, error)

	// Edit replaces the record with the same id and archives both versions.
	Edit(ctx context.Context, email string, record models.HealthRecord) (models.HealthRecord, error)

	// Delete removes the record. Deleting an unknown id is not an error.
	Delete(ctx context.Context, email, id string) error

	// Import parses CSV rows and saves those whose datetime is not in the
	// diary yet.
	Import(ctx context.Context, email string, r io.Reader) (models.ImportResult, error)

	// Export writes the diary as CSV, oldest first.
	Export(ctx context.Context, email string, w io.Writer) error
}

// LabService manages uploaded lab results.
type LabService interface {
	Add(ctx context.Context, email string, result models.LabResult) (models.LabResult, error)
	List(ctx context.Context, email string) []models.LabResult
	Delete(ctx context.Context, email, id string) error
}

// ArchiveService exposes the append-only archives of a user.
type ArchiveService interface {
	Analyses(ctx context.Context, email string) []models.ArchivedAnalysis
	DeleteAnalysis(ctx context.Context, email, id string) error

	Chats(ctx context.Context, email string) []models.ArchivedChat
	SaveChat(ctx context.Context, email string, messages []models.ChatMessage) (models.ArchivedChat, error)
	DeleteChat(ctx context.Context, email, id string) error

	Edits(ctx context.Context, email string) []models.ArchivedRecordEdit
	DeleteEdit(ctx context.Context, email, id string) error
}

// AssistantService talks to the generative AI on behalf of a user.
type AssistantService interface {
	// Greeting is the first message of every new conversation.
	Greeting() models.ChatMessage

	Chat(ctx context.Context, req models.ChatRequest) (models.ChatMessage, error)

	// Analyze produces a grounded trend analysis of the user's diary and
	// archives it.
	Analyze(ctx context.Context, email string) (models.ArchivedAnalysis, error)

	AnalyzeImage(ctx context.Context, req models.ImageAnalysisRequest) (string, error)

	// Speak synthesizes text and writes it to w as a WAV file.
	Speak(ctx context.Context, text string, w io.Writer) error
}

// AdminService manages accounts. Callers must check the admin role.
type AdminService interface {
	ListUsers(ctx context.Context) []models.User

	// DeleteUser removes the account email and everything it owns. actor is
	// the admin performing the deletion.
	DeleteUser(ctx context.Context, actor, email string) error
}

type AuthService interface {
	Register(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
