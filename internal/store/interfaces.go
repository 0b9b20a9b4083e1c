package store

import (
	"context"

	"github.com/MKhiriev/dia-companion/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository manages accounts in the document store.
type UserRepository interface {
	AddUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, email, password string) (models.User, bool, error)
	GetAllUsers(ctx context.Context) []models.User
	DeleteUserAndData(ctx context.Context, email string) error
}

// LabResultRepository stores uploaded lab result images.
type LabResultRepository interface {
	Add(ctx context.Context, result models.LabResult) (models.LabResult, error)
	GetAll(ctx context.Context, email string) []models.LabResult
	Delete(ctx context.Context, email, id string) error
}

// AnalysisRepository stores archived AI analyses.
type AnalysisRepository interface {
	Add(ctx context.Context, analysis models.ArchivedAnalysis) (models.ArchivedAnalysis, error)
	GetAll(ctx context.Context, email string) []models.ArchivedAnalysis
	Delete(ctx context.Context, email, id string) error
}

// ChatRepository stores archived assistant conversations.
type ChatRepository interface {
	Add(ctx context.Context, chat models.ArchivedChat) (models.ArchivedChat, error)
	GetAll(ctx context.Context, email string) []models.ArchivedChat
	Delete(ctx context.Context, email, id string) error
}

// RecordEditRepository stores the edit history of diary records.
type RecordEditRepository interface {
	Add(ctx context.Context, edit models.ArchivedRecordEdit) (models.ArchivedRecordEdit, error)
	GetAll(ctx context.Context, email string) []models.ArchivedRecordEdit
	Delete(ctx context.Context, email, id string) error
}

// DiaryStore keeps each user's diary records as one value.
type DiaryStore interface {
	Load(ctx context.Context, email string) []models.HealthRecord
	Save(ctx context.Context, email string, records []models.HealthRecord) error
	Delete(ctx context.Context, email string) error
}

// KVMedium is the key-value backend of a [DiaryStore]. A write of a single
// key must be atomic.
type KVMedium interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// SessionMarkerStore persists the client session marker.
type SessionMarkerStore interface {
	Read() (models.SessionMarker, error)
	Write(marker models.SessionMarker) error
	Clear() error
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
