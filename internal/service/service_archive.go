package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/store"
	"github.com/MKhiriev/dia-companion/models"
)

type archiveService struct {
	analyses store.AnalysisRepository
	chats    store.ChatRepository
	edits    store.RecordEditRepository

	now func() time.Time

	logger *logger.Logger
}

func NewArchiveService(analyses store.AnalysisRepository, chats store.ChatRepository, edits store.RecordEditRepository, logger *logger.Logger) ArchiveService {
	return &archiveService{
		analyses: analyses,
		chats:    chats,
		edits:    edits,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *archiveService) Analyses(ctx context.Context, email string) []models.ArchivedAnalysis {
	return s.analyses.GetAll(ctx, email)
}

func (s *archiveService) DeleteAnalysis(ctx context.Context, email, id string) error {
	return s.analyses.Delete(ctx, email, id)
}

func (s *archiveService) Chats(ctx context.Context, email string) []models.ArchivedChat {
	return s.chats.GetAll(ctx, email)
}

// SaveChat archives a conversation. A conversation without a single user
// message has nothing worth keeping.
func (s *archiveService) SaveChat(ctx context.Context, email string, messages []models.ChatMessage) (models.ArchivedChat, error) {
	hasUserMessage := false
	for _, m := range messages {
		if m.Role != models.ChatRoleUser && m.Role != models.ChatRoleModel {
			return models.ArchivedChat{}, fmt.Errorf("%w: unknown chat role %q", ErrInvalidDataProvided, m.Role)
		}
		if m.Role == models.ChatRoleUser {
			hasUserMessage = true
		}
	}
	if !hasUserMessage {
		return models.ArchivedChat{}, fmt.Errorf("%w: conversation has no user messages", ErrInvalidDataProvided)
	}

	chat, err := s.chats.Add(ctx, models.ArchivedChat{
		UserEmail: email,
		Datetime:  s.now().UTC().Format(time.RFC3339),
		Messages:  messages,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "archiveService.SaveChat").Msg("error archiving chat")
		return models.ArchivedChat{}, fmt.Errorf("error archiving chat: %w", err)
	}

	return chat, nil
}

func (s *archiveService) DeleteChat(ctx context.Context, email, id string) error {
	return s.chats.Delete(ctx, email, id)
}

func (s *archiveService) Edits(ctx context.Context, email string) []models.ArchivedRecordEdit {
	return s.edits.GetAll(ctx, email)
}

func (s *archiveService) DeleteEdit(ctx context.Context, email, id string) error {
	return s.edits.Delete(ctx, email, id)
}
