package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/dia-companion/internal/service"
	"github.com/MKhiriev/dia-companion/internal/store"
	"github.com/MKhiriev/dia-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestArchive_List(t *testing.T) {
	a := newTestAPI(t)
	a.archive.EXPECT().Analyses(gomock.Any(), userEmail).Return([]models.ArchivedAnalysis{{ID: "a1", Analysis: models.Analysis{Text: "ok", Sources: []models.Source{}}}})
	a.archive.EXPECT().Chats(gomock.Any(), userEmail).Return(nil)
	a.archive.EXPECT().Edits(gomock.Any(), userEmail).Return([]models.ArchivedRecordEdit{{ID: "e1"}, {ID: "e2"}})

	rec := a.do(http.MethodGet, "/api/archive/analyses", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.ArchivedAnalysis](t, rec), 1)

	rec = a.do(http.MethodGet, "/api/archive/chats", userToken, nil)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = a.do(http.MethodGet, "/api/archive/edits", userToken, nil)
	assert.Len(t, decodeBody[[]models.ArchivedRecordEdit](t, rec), 2)
}

func TestArchive_Delete(t *testing.T) {
	a := newTestAPI(t)
	a.archive.EXPECT().DeleteAnalysis(gomock.Any(), userEmail, "a1").Return(nil)
	a.archive.EXPECT().DeleteChat(gomock.Any(), userEmail, "c1").Return(nil)
	a.archive.EXPECT().DeleteEdit(gomock.Any(), userEmail, "e1").Return(fmt.Errorf("delete: %w", store.ErrStoreUnavailable))

	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/api/archive/analyses/a1", userToken, nil).Code)
	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/api/archive/chats/c1", userToken, nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, a.do(http.MethodDelete, "/api/archive/edits/e1", userToken, nil).Code)
}

func TestArchive_SaveChat(t *testing.T) {
	a := newTestAPI(t)
	messages := []models.ChatMessage{{Role: models.ChatRoleUser, Text: "привет"}, {Role: models.ChatRoleModel, Text: "Здравствуйте"}}

	a.archive.EXPECT().SaveChat(gomock.Any(), userEmail, messages).
		Return(models.ArchivedChat{ID: "c1", UserEmail: userEmail, Messages: messages}, nil)

	rec := a.do(http.MethodPost, "/api/archive/chats", userToken, jsonBody(t, models.SaveChatRequest{Messages: messages}))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "c1", decodeBody[models.ArchivedChat](t, rec).ID)
}

func TestArchive_SaveChat_Invalid(t *testing.T) {
	a := newTestAPI(t)
	a.archive.EXPECT().SaveChat(gomock.Any(), userEmail, gomock.Any()).
		Return(models.ArchivedChat{}, fmt.Errorf("%w: conversation has no user messages", service.ErrInvalidDataProvided))

	rec := a.do(http.MethodPost, "/api/archive/chats", userToken, jsonBody(t, models.SaveChatRequest{}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
