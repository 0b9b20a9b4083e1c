package adapter

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/dia-companion/models"
)

// getList GETs a JSON array. A null body becomes an empty slice.
func getList[T any](ctx context.Context, h *httpServerAdapter, path, what string) ([]T, error) {
	items := []T{}

	resp, err := h.authedRequest(ctx).
		SetResult(&items).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", what, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if items == nil {
		items = []T{}
	}
	return items, nil
}

// postJSON POSTs body and decodes the answer into a value of type T. A nil
// body sends no payload.
func postJSON[T any](ctx context.Context, h *httpServerAdapter, path string, body any, what string) (T, error) {
	var result T

	req := h.authedRequest(ctx).SetResult(&result)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return result, fmt.Errorf("%s request: %w", what, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

// ── Lab results ─────────────────────────────────────────────────────────────

func (h *httpServerAdapter) ListLabResults(ctx context.Context) ([]models.LabResult, error) {
	return getList[models.LabResult](ctx, h, "/api/labs", "list lab results")
}

func (h *httpServerAdapter) AddLabResult(ctx context.Context, lab models.LabResult) (models.LabResult, error) {
	return postJSON[models.LabResult](ctx, h, "/api/labs", lab, "add lab result")
}

func (h *httpServerAdapter) DeleteLabResult(ctx context.Context, id string) error {
	return h.deleteByID(ctx, "/api/labs/{id}", id, "delete lab result")
}

// ── Assistant ───────────────────────────────────────────────────────────────

func (h *httpServerAdapter) Greeting(ctx context.Context) (models.ChatMessage, error) {
	var reply models.ChatResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&reply).
		Get("/api/assistant/greeting")
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("greeting request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatMessage{}, err
	}

	return reply.Reply, nil
}

func (h *httpServerAdapter) Chat(ctx context.Context, req models.ChatRequest) (models.ChatMessage, error) {
	reply, err := postJSON[models.ChatResponse](ctx, h, "/api/assistant/chat", req, "chat")
	if err != nil {
		return models.ChatMessage{}, err
	}
	if reply.Reply.Text == "" {
		return models.ChatMessage{}, ErrEmptyResponse
	}
	return reply.Reply, nil
}

func (h *httpServerAdapter) Analyze(ctx context.Context) (models.ArchivedAnalysis, error) {
	return postJSON[models.ArchivedAnalysis](ctx, h, "/api/assistant/analysis", nil, "analysis")
}

func (h *httpServerAdapter) AnalyzeImage(ctx context.Context, req models.ImageAnalysisRequest) (string, error) {
	result, err := postJSON[models.ImageAnalysisResponse](ctx, h, "/api/assistant/image", req, "image analysis")
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

func (h *httpServerAdapter) Speak(ctx context.Context, text string, w io.Writer) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "audio/wav").
		SetBody(models.SpeechRequest{Text: text}).
		Post("/api/assistant/speech")
	if err != nil {
		return fmt.Errorf("speech request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if len(resp.Body()) == 0 {
		return ErrEmptyResponse
	}

	if _, err = w.Write(resp.Body()); err != nil {
		return fmt.Errorf("writing speech: %w", err)
	}
	return nil
}

// ── Archive ─────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) ListAnalyses(ctx context.Context) ([]models.ArchivedAnalysis, error) {
	return getList[models.ArchivedAnalysis](ctx, h, "/api/archive/analyses", "list analyses")
}

func (h *httpServerAdapter) DeleteAnalysis(ctx context.Context, id string) error {
	return h.deleteByID(ctx, "/api/archive/analyses/{id}", id, "delete analysis")
}

func (h *httpServerAdapter) ListChats(ctx context.Context) ([]models.ArchivedChat, error) {
	return getList[models.ArchivedChat](ctx, h, "/api/archive/chats", "list chats")
}

func (h *httpServerAdapter) SaveChat(ctx context.Context, messages []models.ChatMessage) (models.ArchivedChat, error) {
	return postJSON[models.ArchivedChat](ctx, h, "/api/archive/chats", models.SaveChatRequest{Messages: messages}, "save chat")
}

func (h *httpServerAdapter) DeleteChat(ctx context.Context, id string) error {
	return h.deleteByID(ctx, "/api/archive/chats/{id}", id, "delete chat")
}

func (h *httpServerAdapter) ListEdits(ctx context.Context) ([]models.ArchivedRecordEdit, error) {
	return getList[models.ArchivedRecordEdit](ctx, h, "/api/archive/edits", "list edits")
}

func (h *httpServerAdapter) DeleteEdit(ctx context.Context, id string) error {
	return h.deleteByID(ctx, "/api/archive/edits/{id}", id, "delete edit")
}

// ── Admin ───────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	return getList[models.User](ctx, h, "/api/admin/users", "list users")
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, email string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("email", email).
		Delete("/api/admin/users/{email}")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}
