// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/store"
	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/internal/validators"
	"github.com/MKhiriev/dia-companion/models"
)

// diaryService keeps diary records in the key-value store and writes the
// edit history to the document store.
type diaryService struct {
	diary     store.DiaryStore
	edits     store.RecordEditRepository
	ids       *utils.UUIDGenerator
	validator validators.Validator

	// mu serializes read-modify-write cycles on the diary.
	mu  sync.Mutex
	now func() time.Time

	logger *logger.Logger
}

func NewDiaryService(diary store.DiaryStore, edits store.RecordEditRepository, logger *logger.Logger) DiaryService {
	return &diaryService{
		diary:     diary,
		edits:     edits,
		ids:       utils.NewUUIDGenerator(),
		validator: validators.NewHealthRecordValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *diaryService) List(ctx context.Context, email string) []models.HealthRecord {
	return s.diary.Load(ctx, email)
}

func (s *diaryService) Add(ctx context.Context, email string, record models.HealthRecord) (models.HealthRecord, error) {
	if err := s.validator.Validate(ctx, record); err != nil {
		return models.HealthRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = s.ids.Generate()
	records := append(s.diary.Load(ctx, email), record)
	models.SortByDatetimeDesc(records)

	if err := s.diary.Save(ctx, email, records); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "diaryService.Add").Msg("error saving diary")
		return models.HealthRecord{}, fmt.Errorf("error saving record: %w", err)
	}

	return record, nil
}

// Edit replaces the stored record and then appends an edit archive entry.
// A failure to archive is logged; the edit itself stays in place.
func (s *diaryService) Edit(ctx context.Context, email string, record models.HealthRecord) (models.HealthRecord, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, record); err != nil {
		return models.HealthRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.diary.Load(ctx, email)
	idx := slices.IndexFunc(records, func(r models.HealthRecord) bool { return r.ID == record.ID })
	if idx < 0 {
		return models.HealthRecord{}, ErrRecordNotFound
	}

	original := records[idx]
	records[idx] = record
	models.SortByDatetimeDesc(records)

	if err := s.diary.Save(ctx, email, records); err != nil {
		log.Err(err).Str("func", "diaryService.Edit").Msg("error saving diary")
		return models.HealthRecord{}, fmt.Errorf("error saving record: %w", err)
	}

	_, err := s.edits.Add(ctx, models.ArchivedRecordEdit{
		UserEmail:      email,
		Datetime:       s.now().UTC().Format(time.RFC3339),
		RecordID:       record.ID,
		OriginalRecord: original,
		UpdatedRecord:  record,
	})
	if err != nil {
		log.Err(err).Str("func", "diaryService.Edit").Str("record_id", record.ID).Msg("edit was saved but not archived")
	}

	return record, nil
}

func (s *diaryService) Delete(ctx context.Context, email, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.diary.Load(ctx, email)
	kept := slices.DeleteFunc(slices.Clone(records), func(r models.HealthRecord) bool { return r.ID == id })
	if len(kept) == len(records) {
		return nil
	}

	if err := s.diary.Save(ctx, email, kept); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "diaryService.Delete").Msg("error saving diary")
		return fmt.Errorf("error deleting record: %w", err)
	}

	return nil
}

// Import adds the parsed rows whose datetime string is not in the diary yet.
// Duplicates inside the file are dropped the same way.
func (s *diaryService) Import(ctx context.Context, email string, r io.Reader) (models.ImportResult, error) {
	log := logger.FromContext(ctx)

	parsed, err := parseCSV(r, log)
	if err != nil {
		return models.ImportResult{}, err
	}

	result := models.ImportResult{Skipped: parsed.skipped}
	if len(parsed.records) == 0 {
		if parsed.dataRows > 0 {
			return result, ErrNoValidRows
		}
		return result, ErrNothingToImport
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.diary.Load(ctx, email)
	seen := make(map[string]struct{}, len(existing)+len(parsed.records))
	for _, rec := range existing {
		seen[rec.Datetime] = struct{}{}
	}

	fresh := make([]models.HealthRecord, 0, len(parsed.records))
	for _, rec := range parsed.records {
		if _, dup := seen[rec.Datetime]; dup {
			result.Duplicates++
			continue
		}
		seen[rec.Datetime] = struct{}{}
		rec.ID = s.ids.Generate()
		fresh = append(fresh, rec)
	}

	if len(fresh) == 0 {
		return result, ErrNothingToImport
	}

	records := append(existing, fresh...)
	models.SortByDatetimeDesc(records)
	if err = s.diary.Save(ctx, email, records); err != nil {
		log.Err(err).Str("func", "diaryService.Import").Msg("error saving diary")
		return models.ImportResult{}, fmt.Errorf("error saving imported records: %w", err)
	}

	result.Imported = len(fresh)
	log.Info().Int("imported", result.Imported).Int("duplicates", result.Duplicates).
		Int("skipped", len(result.Skipped)).Msg("CSV import finished")

	return result, nil
}

// Export writes nothing and returns ErrNoDataToExport for an empty diary.
func (s *diaryService) Export(ctx context.Context, email string, w io.Writer) error {
	records := s.diary.Load(ctx, email)
	if len(records) == 0 {
		return ErrNoDataToExport
	}
	models.SortByDatetimeAsc(records)

	if err := writeCSV(w, records); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}
	return nil
}
