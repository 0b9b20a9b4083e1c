// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/models"
)

// diaryStore implements [DiaryStore]: every user's diary is one JSON array
// stored under "<namespace>_<email>" in a key-value medium.
type diaryStore struct {
	medium    KVMedium
	namespace string
	logger    *logger.Logger
}

// NewDiaryStore constructs a [DiaryStore] over medium.
func NewDiaryStore(medium KVMedium, namespace string, logger *logger.Logger) DiaryStore {
	logger.Debug().Str("namespace", namespace).Msg("creating diary store")
	return &diaryStore{
		medium:    medium,
		namespace: namespace,
		logger:    logger,
	}
}

// Key returns the medium key of email's diary.
func (d *diaryStore) Key(email string) string {
	return d.namespace + "_" + email
}

// Load returns the user's records newest first. It never fails: a missing
// entry, a medium error or an undecodable value all yield an empty list.
func (d *diaryStore) Load(ctx context.Context, email string) []models.HealthRecord {
	log := logger.FromContext(ctx)
	records := make([]models.HealthRecord, 0)

	raw, found, err := d.medium.Get(ctx, d.Key(email))
	if err != nil {
		log.Warn().Err(err).Str("func", "*diaryStore.Load").Msg("failed to read diary, returning empty list")
		return records
	}
	if !found {
		return records
	}

	if err = json.Unmarshal(raw, &records); err != nil {
		log.Warn().Err(err).Str("func", "*diaryStore.Load").Msg("corrupt diary data, returning empty list")
		return make([]models.HealthRecord, 0)
	}
	if records == nil {
		records = make([]models.HealthRecord, 0)
	}

	models.SortByDatetimeDesc(records)
	return records
}

// Save replaces the whole diary of the user with records in a single write.
func (d *diaryStore) Save(ctx context.Context, email string, records []models.HealthRecord) error {
	log := logger.FromContext(ctx)

	if records == nil {
		records = []models.HealthRecord{}
	}

	payload, err := json.Marshal(records)
	if err != nil {
		log.Err(err).Str("func", "*diaryStore.Save").Msg("failed to encode diary")
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	if err = d.medium.Set(ctx, d.Key(email), payload); err != nil {
		log.Err(err).Str("func", "*diaryStore.Save").Int("records", len(records)).Msg("failed to write diary")
		return fmt.Errorf("error saving diary: %w", err)
	}

	return nil
}

// Delete removes the user's diary. Deleting a missing diary succeeds.
func (d *diaryStore) Delete(ctx context.Context, email string) error {
	if err := d.medium.Delete(ctx, d.Key(email)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*diaryStore.Delete").Msg("failed to delete diary")
		return fmt.Errorf("error deleting diary: %w", err)
	}
	return nil
}
