package client

import (
	"strings"
	"testing"

	"github.com/MKhiriev/dia-companion/internal/adapter"
	"github.com/MKhiriev/dia-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestArchiveAnalyses(t *testing.T) {
	c := newTestClient(t)
	c.seedSession(t)
	c.api.EXPECT().ListAnalyses(gomock.Any()).Return([]models.ArchivedAnalysis{
		{ID: "a1", Datetime: "2024-05-03T10:00", Analysis: models.Analysis{Text: "Показатели стабильны.\nДетали ниже.", Sources: []models.Source{{URI: "https://who.int"}}}},
	}, nil)

	out, err := c.run("", "archive", "analyses")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Показатели стабильны.")
	assert.NotContains(t, lines[1], "Детали")
}

func TestArchiveAnalysesShow(t *testing.T) {
	c := newTestClient(t)
	c.seedSession(t)
	c.api.EXPECT().ListAnalyses(gomock.Any()).Return([]models.ArchivedAnalysis{
		{ID: "a1", Datetime: "2024-05-03T10:00", Analysis: models.Analysis{Text: "Всё хорошо."}},
	}, nil).Times(2)

	out, err := c.run("", "archive", "analyses", "show", "a1")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-03T10:00\n\nВсё хорошо.\n", out)

	_, err = c.run("", "archive", "analyses", "show", "a2")
	assert.ErrorIs(t, err, errArchiveItemNotFound)
}

func TestArchiveChats(t *testing.T) {
	c := newTestClient(t)
	c.seedSession(t)

	chat := models.ArchivedChat{ID: "c1", Datetime: "2024-05-03T10:00", Messages: []models.ChatMessage{
		{Role: models.ChatRoleModel, Text: "Здравствуйте!"},
		{Role: models.ChatRoleUser, Text: "норма сахара?"},
		{Role: models.ChatRoleModel, Text: "3.9-5.5"},
	}}
	c.api.EXPECT().ListChats(gomock.Any()).Return([]models.ArchivedChat{chat}, nil).Times(2)

	out, err := c.run("", "archive", "chats")
	require.NoError(t, err)
	assert.Contains(t, out, "норма сахара?")

	out, err = c.run("", "archive", "chats", "show", "c1")
	require.NoError(t, err)
	assert.Equal(t, "model: Здравствуйте!\nuser: норма сахара?\nmodel: 3.9-5.5\n", out)
}

func TestArchiveEdits(t *testing.T) {
	c := newTestClient(t)
	c.seedSession(t)
	c.api.EXPECT().ListEdits(gomock.Any()).Return([]models.ArchivedRecordEdit{{
		ID:             "e1",
		Datetime:       "2024-05-04T09:00",
		RecordID:       "r1",
		OriginalRecord: models.HealthRecord{Datetime: "2024-05-01T08:00", Glucose: ptr(5.5)},
		UpdatedRecord:  models.HealthRecord{Datetime: "2024-05-01T08:00", Glucose: ptr(6.5), Systolic: ptr(120), Diastolic: ptr(80)},
	}}, nil)

	out, err := c.run("", "archive", "edits")

	require.NoError(t, err)
	assert.Contains(t, out, "2024-05-01T08:00 5.5 mmol/L")
	assert.Contains(t, out, "2024-05-01T08:00 6.5 mmol/L 120/80")
}

func TestArchive_Empty(t *testing.T) {
	c := newTestClient(t)
	c.seedSession(t)
	c.api.EXPECT().ListAnalyses(gomock.Any()).Return(nil, nil)
	c.api.EXPECT().ListChats(gomock.Any()).Return(nil, nil)
	c.api.EXPECT().ListEdits(gomock.Any()).Return(nil, nil)

	for kind, want := range map[string]string{
		"analyses": "no saved analyses\n",
		"chats":    "no saved chats\n",
		"edits":    "no record edits\n",
	} {
		out, err := c.run("", "archive", kind)
		require.NoError(t, err)
		assert.Equal(t, want, out)
	}
}

func TestArchiveDelete(t *testing.T) {
	c := newTestClient(t)
	c.seedSession(t)
	c.api.EXPECT().DeleteAnalysis(gomock.Any(), "a1").Return(nil)
	c.api.EXPECT().DeleteChat(gomock.Any(), "c1").Return(nil)
	c.api.EXPECT().DeleteEdit(gomock.Any(), "e1").Return(adapter.ErrNotFound)

	out, err := c.run("", "archive", "analyses", "delete", "a1")
	require.NoError(t, err)
	assert.Equal(t, "deleted a1\n", out)

	_, err = c.run("", "archive", "chats", "delete", "c1")
	require.NoError(t, err)

	_, err = c.run("", "archive", "edits", "delete", "e1")
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "first", preview("  first\nsecond"))

	long := strings.Repeat("я", previewWidth+5)
	got := []rune(preview(long))
	assert.Len(t, got, previewWidth)
	assert.Equal(t, '…', got[len(got)-1])
}
