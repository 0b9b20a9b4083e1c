// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/dia-companion/internal/config"
	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/models"
	"google.golang.org/genai"
)

// contentGenerator is the part of genai.Models the assistant uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type genaiAssistant struct {
	models contentGenerator

	chatModel     string
	analysisModel string
	imageModel    string
	speechModel   string
	voice         string

	logger *logger.Logger
}

// NewGenAIAssistant connects to the Gemini API with cfg.APIKey.
func NewGenAIAssistant(ctx context.Context, cfg config.AI, logger *logger.Logger) (Assistant, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return newGenAIAssistant(client.Models, cfg, logger), nil
}

func newGenAIAssistant(models contentGenerator, cfg config.AI, logger *logger.Logger) *genaiAssistant {
	return &genaiAssistant{
		models:        models,
		chatModel:     cfg.ChatModel,
		analysisModel: cfg.AnalysisModel,
		imageModel:    cfg.ImageModel,
		speechModel:   cfg.SpeechModel,
		voice:         cfg.Voice,
		logger:        logger,
	}
}

func (g *genaiAssistant) Chat(ctx context.Context, history []models.ChatMessage, message string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		role := genai.RoleUser
		if m.Role == models.ChatRoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, genai.Role(role)))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	resp, err := g.models.GenerateContent(ctx, g.chatModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("GenAI chat failed: %w", err)
	}

	return responseText(resp)
}

func (g *genaiAssistant) AnalyzeTrends(ctx context.Context, prompt string, images []models.InlineImage) (models.Analysis, error) {
	parts := make([]*genai.Part, 0, len(images)+1)
	for _, img := range images {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(prompt))

	resp, err := g.models.GenerateContent(ctx, g.analysisModel,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		},
	)
	if err != nil {
		return models.Analysis{}, fmt.Errorf("GenAI analysis failed: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return models.Analysis{}, err
	}

	return models.Analysis{Text: text, Sources: groundingSources(resp)}, nil
}

func (g *genaiAssistant) AnalyzeImage(ctx context.Context, prompt string, image models.InlineImage) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(image.Data, image.MIMEType),
		genai.NewPartFromText(prompt),
	}

	resp, err := g.models.GenerateContent(ctx, g.imageModel,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, nil)
	if err != nil {
		return "", fmt.Errorf("GenAI image analysis failed: %w", err)
	}

	return responseText(resp)
}

func (g *genaiAssistant) Speak(ctx context.Context, text string) ([]byte, error) {
	resp, err := g.models.GenerateContent(ctx, g.speechModel,
		[]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)},
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: g.voice},
				},
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("GenAI speech failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrEmptyResponse
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}

	return nil, ErrEmptyResponse
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// groundingSources lists the web pages the first candidate was grounded on,
// without duplicates.
func groundingSources(resp *genai.GenerateContentResponse) []models.Source {
	sources := []models.Source{}
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return sources
	}

	seen := make(map[string]struct{})
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		if _, ok := seen[chunk.Web.URI]; ok {
			continue
		}
		seen[chunk.Web.URI] = struct{}{}
		sources = append(sources, models.Source{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}

	return sources
}
