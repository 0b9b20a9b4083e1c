// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/models"
)

// Nested documents (sources, messages, record snapshots) are kept as JSON
// text so that the same schema works on SQLite and PostgreSQL.

type analysisRepository struct {
	collection[models.ArchivedAnalysis]
}

// NewAnalysisRepository constructs an [AnalysisRepository] over the
// "archived_analyses" table.
func NewAnalysisRepository(store *DocumentStore, ids *utils.UUIDGenerator, logger *logger.Logger) AnalysisRepository {
	logger.Debug().Msg("creating analysis repository")
	return &analysisRepository{collection[models.ArchivedAnalysis]{
		store:   store,
		ids:     ids,
		table:   analysesTable,
		columns: analysisColumns,
		row: func(a models.ArchivedAnalysis) ([]any, error) {
			sources := a.Analysis.Sources
			if sources == nil {
				sources = []models.Source{}
			}
			encoded, err := json.Marshal(sources)
			if err != nil {
				return nil, err
			}
			return []any{a.ID, a.UserEmail, a.Datetime, a.Analysis.Text, string(encoded)}, nil
		},
		scan: func(s rowScanner) (models.ArchivedAnalysis, error) {
			var (
				a       models.ArchivedAnalysis
				sources string
			)
			if err := s.Scan(&a.ID, &a.UserEmail, &a.Datetime, &a.Analysis.Text, &sources); err != nil {
				return a, err
			}
			err := json.Unmarshal([]byte(sources), &a.Analysis.Sources)
			return a, err
		},
		datetime: func(a models.ArchivedAnalysis) string { return a.Datetime },
	}}
}

func (r *analysisRepository) Add(ctx context.Context, analysis models.ArchivedAnalysis) (models.ArchivedAnalysis, error) {
	analysis.ID = r.ids.Generate()
	if err := r.add(ctx, analysis); err != nil {
		return models.ArchivedAnalysis{}, err
	}
	return analysis, nil
}

func (r *analysisRepository) GetAll(ctx context.Context, email string) []models.ArchivedAnalysis {
	return r.getAll(ctx, email)
}

func (r *analysisRepository) Delete(ctx context.Context, email, id string) error {
	return r.delete(ctx, email, id)
}

type chatRepository struct {
	collection[models.ArchivedChat]
}

// NewChatRepository constructs a [ChatRepository] over the "archived_chats"
// table.
func NewChatRepository(store *DocumentStore, ids *utils.UUIDGenerator, logger *logger.Logger) ChatRepository {
	logger.Debug().Msg("creating chat repository")
	return &chatRepository{collection[models.ArchivedChat]{
		store:   store,
		ids:     ids,
		table:   chatsTable,
		columns: chatColumns,
		row: func(c models.ArchivedChat) ([]any, error) {
			messages := c.Messages
			if messages == nil {
				messages = []models.ChatMessage{}
			}
			encoded, err := json.Marshal(messages)
			if err != nil {
				return nil, err
			}
			return []any{c.ID, c.UserEmail, c.Datetime, string(encoded)}, nil
		},
		scan: func(s rowScanner) (models.ArchivedChat, error) {
			var (
				c        models.ArchivedChat
				messages string
			)
			if err := s.Scan(&c.ID, &c.UserEmail, &c.Datetime, &messages); err != nil {
				return c, err
			}
			err := json.Unmarshal([]byte(messages), &c.Messages)
			return c, err
		},
		datetime: func(c models.ArchivedChat) string { return c.Datetime },
	}}
}

func (r *chatRepository) Add(ctx context.Context, chat models.ArchivedChat) (models.ArchivedChat, error) {
	chat.ID = r.ids.Generate()
	if err := r.add(ctx, chat); err != nil {
		return models.ArchivedChat{}, err
	}
	return chat, nil
}

func (r *chatRepository) GetAll(ctx context.Context, email string) []models.ArchivedChat {
	return r.getAll(ctx, email)
}

func (r *chatRepository) Delete(ctx context.Context, email, id string) error {
	return r.delete(ctx, email, id)
}

type recordEditRepository struct {
	collection[models.ArchivedRecordEdit]
}

// NewRecordEditRepository constructs a [RecordEditRepository] over the
// "record_edits" table.
func NewRecordEditRepository(store *DocumentStore, ids *utils.UUIDGenerator, logger *logger.Logger) RecordEditRepository {
	logger.Debug().Msg("creating record edit repository")
	return &recordEditRepository{collection[models.ArchivedRecordEdit]{
		store:   store,
		ids:     ids,
		table:   recordEditsTable,
		columns: recordEditColumns,
		row: func(e models.ArchivedRecordEdit) ([]any, error) {
			original, err := json.Marshal(e.OriginalRecord)
			if err != nil {
				return nil, err
			}
			updated, err := json.Marshal(e.UpdatedRecord)
			if err != nil {
				return nil, err
			}
			return []any{e.ID, e.UserEmail, e.Datetime, e.RecordID, string(original), string(updated)}, nil
		},
		scan: func(s rowScanner) (models.ArchivedRecordEdit, error) {
			var (
				e                 models.ArchivedRecordEdit
				original, updated string
			)
			if err := s.Scan(&e.ID, &e.UserEmail, &e.Datetime, &e.RecordID, &original, &updated); err != nil {
				return e, err
			}
			if err := json.Unmarshal([]byte(original), &e.OriginalRecord); err != nil {
				return e, err
			}
			err := json.Unmarshal([]byte(updated), &e.UpdatedRecord)
			return e, err
		},
		datetime: func(e models.ArchivedRecordEdit) string { return e.Datetime },
	}}
}

func (r *recordEditRepository) Add(ctx context.Context, edit models.ArchivedRecordEdit) (models.ArchivedRecordEdit, error) {
	edit.ID = r.ids.Generate()
	if err := r.add(ctx, edit); err != nil {
		return models.ArchivedRecordEdit{}, err
	}
	return edit, nil
}

func (r *recordEditRepository) GetAll(ctx context.Context, email string) []models.ArchivedRecordEdit {
	return r.getAll(ctx, email)
}

func (r *recordEditRepository) Delete(ctx context.Context, email, id string) error {
	return r.delete(ctx, email, id)
}
