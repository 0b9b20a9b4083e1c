// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/dia-companion/internal/adapter"
	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/store"
	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/internal/validators"
	"github.com/MKhiriev/dia-companion/models"
)

const (
	// MinRecordsForAnalysis is the smallest diary a trend analysis runs on.
	MinRecordsForAnalysis = 3

	analysisRecordLimit = 30
	analysisImageLimit  = 5

	// speech arrives as 24 kHz mono 16-bit PCM
	speechSampleRate    = 24000
	speechChannels      = 1
	speechBitsPerSample = 16
)

// assistantService forwards requests to the generative AI. Calls are not
// retried and nothing is cached on failure. A nil ai means the assistant is
// not configured and every call fails with ErrAssistantUnavailable.
type assistantService struct {
	ai        adapter.Assistant
	diary     store.DiaryStore
	labs      store.LabResultRepository
	analyses  store.AnalysisRepository
	validator validators.Validator

	now func() time.Time

	logger *logger.Logger
}

func NewAssistantService(ai adapter.Assistant, storages *store.Storages, logger *logger.Logger) AssistantService {
	return &assistantService{
		ai:        ai,
		diary:     storages.Diary,
		labs:      storages.LabResults,
		analyses:  storages.Analyses,
		validator: validators.NewLabResultValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *assistantService) Greeting() models.ChatMessage {
	return models.ChatMessage{Role: models.ChatRoleModel, Text: GreetingText}
}

func (s *assistantService) Chat(ctx context.Context, req models.ChatRequest) (models.ChatMessage, error) {
	if strings.TrimSpace(req.Message) == "" {
		return models.ChatMessage{}, fmt.Errorf("%w: empty message", ErrInvalidDataProvided)
	}
	if s.ai == nil {
		return models.ChatMessage{}, ErrAssistantUnavailable
	}

	reply, err := s.ai.Chat(ctx, req.History, req.Message)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "assistantService.Chat").Msg("assistant call failed")
		return models.ChatMessage{}, fmt.Errorf("%w: %w", ErrAssistantUnavailable, err)
	}

	return models.ChatMessage{Role: models.ChatRoleModel, Text: reply}, nil
}

// Analyze sends the 30 most recent records and the most recent lab images to
// the assistant and archives the answer. When archiving fails the analysis is
// still returned, without an id.
func (s *assistantService) Analyze(ctx context.Context, email string) (models.ArchivedAnalysis, error) {
	log := logger.FromContext(ctx)

	records := s.diary.Load(ctx, email)
	if len(records) < MinRecordsForAnalysis {
		return models.ArchivedAnalysis{}, fmt.Errorf("%w: need at least %d, have %d",
			ErrNotEnoughRecords, MinRecordsForAnalysis, len(records))
	}
	if s.ai == nil {
		return models.ArchivedAnalysis{}, ErrAssistantUnavailable
	}
	if len(records) > analysisRecordLimit {
		records = records[:analysisRecordLimit]
	}

	labs, images := s.recentLabImages(ctx, email)

	prompt, err := buildAnalysisPrompt(records, labs)
	if err != nil {
		return models.ArchivedAnalysis{}, err
	}

	analysis, err := s.ai.AnalyzeTrends(ctx, prompt, images)
	if err != nil {
		log.Err(err).Str("func", "assistantService.Analyze").Msg("assistant call failed")
		return models.ArchivedAnalysis{}, fmt.Errorf("%w: %w", ErrAssistantUnavailable, err)
	}
	if analysis.Sources == nil {
		analysis.Sources = []models.Source{}
	}

	archived := models.ArchivedAnalysis{
		UserEmail: email,
		Datetime:  s.now().UTC().Format(time.RFC3339),
		Analysis:  analysis,
	}

	saved, err := s.analyses.Add(ctx, archived)
	if err != nil {
		log.Err(err).Str("func", "assistantService.Analyze").Msg("analysis was not archived")
		return archived, nil
	}

	return saved, nil
}

// recentLabImages returns up to analysisImageLimit newest lab results that
// carry a decodable image.
func (s *assistantService) recentLabImages(ctx context.Context, email string) ([]models.LabResult, []models.InlineImage) {
	var (
		labs   []models.LabResult
		images []models.InlineImage
	)

	for _, lab := range s.labs.GetAll(ctx, email) {
		if len(images) == analysisImageLimit {
			break
		}
		if !strings.HasPrefix(strings.ToLower(lab.FileType), "image/") {
			continue
		}

		data, err := base64.StdEncoding.DecodeString(lab.FileContent)
		if err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("lab_id", lab.ID).Msg("skipping undecodable lab image")
			continue
		}

		labs = append(labs, lab)
		images = append(images, models.InlineImage{MIMEType: lab.FileType, Data: data})
	}

	return labs, images
}

func (s *assistantService) AnalyzeImage(ctx context.Context, req models.ImageAnalysisRequest) (string, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}
	if s.ai == nil {
		return "", ErrAssistantUnavailable
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		prompt = DefaultImagePrompt
	}

	// validated above
	data, _ := base64.StdEncoding.DecodeString(req.FileContent)

	text, err := s.ai.AnalyzeImage(ctx, prompt, models.InlineImage{MIMEType: req.FileType, Data: data})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "assistantService.AnalyzeImage").Msg("assistant call failed")
		return "", fmt.Errorf("%w: %w", ErrAssistantUnavailable, err)
	}

	return text, nil
}

func (s *assistantService) Speak(ctx context.Context, text string, w io.Writer) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: empty text", ErrInvalidDataProvided)
	}
	if s.ai == nil {
		return ErrAssistantUnavailable
	}

	pcm, err := s.ai.Speak(ctx, text)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "assistantService.Speak").Msg("assistant call failed")
		return fmt.Errorf("%w: %w", ErrAssistantUnavailable, err)
	}

	if err = utils.WriteWAV(w, pcm, speechSampleRate, speechChannels, speechBitsPerSample); err != nil {
		return fmt.Errorf("error writing audio: %w", err)
	}

	return nil
}
