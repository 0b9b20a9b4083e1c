package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/dia-companion/internal/config"
	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig

	resp *genai.GenerateContentResponse
	err  error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	f.config = config
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: genai.NewContentFromText(text, genai.RoleModel),
		}},
	}
}

var testAIConfig = config.AI{
	ChatModel:     "chat-model",
	AnalysisModel: "analysis-model",
	ImageModel:    "image-model",
	SpeechModel:   "speech-model",
	Voice:         "Kore",
}

func TestNewGenAIAssistant_RequiresKey(t *testing.T) {
	_, err := NewGenAIAssistant(context.Background(), config.AI{}, logger.Nop())
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGenAI_ChatSendsHistoryInOrder(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse(" Ешьте больше овощей. ")}
	a := newGenAIAssistant(gen, testAIConfig, logger.Nop())

	history := []models.ChatMessage{
		{Role: models.ChatRoleModel, Text: "Здравствуйте!"},
		{Role: models.ChatRoleUser, Text: "Что есть на завтрак?"},
		{Role: models.ChatRoleModel, Text: "Кашу."},
	}
	reply, err := a.Chat(context.Background(), history, "А на ужин?")

	require.NoError(t, err)
	assert.Equal(t, "Ешьте больше овощей.", reply)
	assert.Equal(t, "chat-model", gen.model)

	require.Len(t, gen.contents, 4)
	roles := make([]string, 0, len(gen.contents))
	for _, c := range gen.contents {
		roles = append(roles, c.Role)
	}
	assert.Equal(t, []string{"model", "user", "model", "user"}, roles)
	assert.Equal(t, "А на ужин?", gen.contents[3].Parts[0].Text)
}

func TestGenAI_ChatErrors(t *testing.T) {
	a := newGenAIAssistant(&fakeGenerator{err: errors.New("quota")}, testAIConfig, logger.Nop())
	_, err := a.Chat(context.Background(), nil, "hi")
	assert.ErrorContains(t, err, "quota")

	a = newGenAIAssistant(&fakeGenerator{resp: &genai.GenerateContentResponse{}}, testAIConfig, logger.Nop())
	_, err = a.Chat(context.Background(), nil, "hi")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenAI_AnalyzeTrendsCollectsSources(t *testing.T) {
	resp := textResponse("## Анализ")
	resp.Candidates[0].GroundingMetadata = &genai.GroundingMetadata{
		GroundingChunks: []*genai.GroundingChunk{
			{Web: &genai.GroundingChunkWeb{URI: "https://a.example", Title: "A"}},
			{Web: &genai.GroundingChunkWeb{URI: "https://a.example", Title: "A again"}},
			{Web: &genai.GroundingChunkWeb{URI: "https://b.example", Title: "B"}},
			{},
		},
	}
	gen := &fakeGenerator{resp: resp}
	a := newGenAIAssistant(gen, testAIConfig, logger.Nop())

	img := models.InlineImage{MIMEType: "image/png", Data: []byte{1, 2}}
	analysis, err := a.AnalyzeTrends(context.Background(), "prompt", []models.InlineImage{img})

	require.NoError(t, err)
	assert.Equal(t, "## Анализ", analysis.Text)
	assert.Equal(t, []models.Source{{URI: "https://a.example", Title: "A"}, {URI: "https://b.example", Title: "B"}}, analysis.Sources)

	assert.Equal(t, "analysis-model", gen.model)
	require.NotNil(t, gen.config)
	require.Len(t, gen.config.Tools, 1)
	assert.NotNil(t, gen.config.Tools[0].GoogleSearch)

	parts := gen.contents[0].Parts
	require.Len(t, parts, 2)
	assert.Equal(t, "image/png", parts[0].InlineData.MIMEType)
	assert.Equal(t, "prompt", parts[1].Text)
}

func TestGenAI_AnalyzeTrendsWithoutGrounding(t *testing.T) {
	a := newGenAIAssistant(&fakeGenerator{resp: textResponse("ok")}, testAIConfig, logger.Nop())

	analysis, err := a.AnalyzeTrends(context.Background(), "prompt", nil)
	require.NoError(t, err)
	assert.NotNil(t, analysis.Sources)
	assert.Empty(t, analysis.Sources)
}

func TestGenAI_AnalyzeImage(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse("~45 г углеводов")}
	a := newGenAIAssistant(gen, testAIConfig, logger.Nop())

	text, err := a.AnalyzeImage(context.Background(), "оцени", models.InlineImage{MIMEType: "image/jpeg", Data: []byte{0xff}})

	require.NoError(t, err)
	assert.Equal(t, "~45 г углеводов", text)
	assert.Equal(t, "image-model", gen.model)
	assert.Equal(t, []byte{0xff}, gen.contents[0].Parts[0].InlineData.Data)
}

func TestGenAI_Speak(t *testing.T) {
	pcm := []byte{0, 1, 2, 3}
	gen := &fakeGenerator{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: genai.NewContentFromParts([]*genai.Part{genai.NewPartFromBytes(pcm, "audio/L16;rate=24000")}, genai.RoleModel),
		}},
	}}
	a := newGenAIAssistant(gen, testAIConfig, logger.Nop())

	audio, err := a.Speak(context.Background(), "текст")

	require.NoError(t, err)
	assert.Equal(t, pcm, audio)
	assert.Equal(t, "speech-model", gen.model)
	assert.Equal(t, "Kore", gen.config.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName)
}

func TestGenAI_SpeakWithoutAudio(t *testing.T) {
	a := newGenAIAssistant(&fakeGenerator{resp: textResponse("no audio")}, testAIConfig, logger.Nop())

	_, err := a.Speak(context.Background(), "текст")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}
