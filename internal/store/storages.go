package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/dia-companion/internal/config"
	"github.com/MKhiriev/dia-companion/internal/crypto"
	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/utils"
)

// Storages groups every server-side store.
type Storages struct {
	Documents   *DocumentStore
	Users       UserRepository
	LabResults  LabResultRepository
	Analyses    AnalysisRepository
	Chats       ChatRepository
	RecordEdits RecordEditRepository
	Diary       DiaryStore

	diaryMedium KVMedium
}

// NewStorages builds the stores described by cfg.
//
// The diary medium is connected immediately and its failure is fatal. The
// document store is opened once here to run migrations early; a failure is
// only logged, because reads degrade to empty lists and writes report
// [ErrStoreUnavailable] until a later attempt succeeds.
func NewStorages(ctx context.Context, cfg config.Storage, hasher crypto.PasswordHasher, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	medium, err := NewDiaryMedium(ctx, cfg.Diary, logger)
	if err != nil {
		return nil, fmt.Errorf("diary store error: %w", err)
	}

	documents := NewDocumentStore(cfg.DB.DSN, logger)
	if _, err = documents.Open(ctx); err != nil {
		logger.Err(err).Msg("document store is not available yet")
	}

	ids := utils.NewUUIDGenerator()
	diary := NewDiaryStore(medium, cfg.Diary.Namespace, logger)

	return &Storages{
		Documents:   documents,
		Users:       NewUserRepository(documents, diary, hasher, logger),
		LabResults:  NewLabResultRepository(documents, ids, logger),
		Analyses:    NewAnalysisRepository(documents, ids, logger),
		Chats:       NewChatRepository(documents, ids, logger),
		RecordEdits: NewRecordEditRepository(documents, ids, logger),
		Diary:       diary,
		diaryMedium: medium,
	}, nil
}

// NewDiaryMedium connects the key-value medium selected by cfg.Backend.
func NewDiaryMedium(ctx context.Context, cfg config.Diary, logger *logger.Logger) (KVMedium, error) {
	switch cfg.Backend {
	case config.DiaryBackendSQLite:
		return NewSQLiteMedium(ctx, cfg.DSN, logger)
	case config.DiaryBackendRedis:
		return NewRedisMedium(ctx, cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB)
	case config.DiaryBackendMemory:
		return NewMemoryMedium(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDiaryBackend, cfg.Backend)
	}
}

// Close releases the document store and the diary medium.
func (s *Storages) Close() error {
	return errors.Join(s.Documents.Close(), s.diaryMedium.Close())
}
