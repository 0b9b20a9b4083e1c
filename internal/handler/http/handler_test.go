package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/mock"
	"github.com/MKhiriev/dia-companion/internal/service"
	"github.com/MKhiriev/dia-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	userEmail  = "anna@example.com"
	adminEmail = "boss@example.com"
	userToken  = "user-token"
	adminToken = "admin-token"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testAPI is the full router backed by mocked services.
type testAPI struct {
	handler *Handler
	router  http.Handler

	auth      *mock.MockAuthService
	diary     *mock.MockDiaryService
	labs      *mock.MockLabService
	archive   *mock.MockArchiveService
	assistant *mock.MockAssistantService
	admin     *mock.MockAdminService
	info      *mock.MockAppInfoService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctrl := gomock.NewController(t)

	a := &testAPI{
		auth:      mock.NewMockAuthService(ctrl),
		diary:     mock.NewMockDiaryService(ctrl),
		labs:      mock.NewMockLabService(ctrl),
		archive:   mock.NewMockArchiveService(ctrl),
		assistant: mock.NewMockAssistantService(ctrl),
		admin:     mock.NewMockAdminService(ctrl),
		info:      mock.NewMockAppInfoService(ctrl),
	}

	a.auth.EXPECT().ParseToken(gomock.Any(), userToken).
		Return(models.Token{Email: userEmail, Role: models.RoleUser}, nil).AnyTimes()
	a.auth.EXPECT().ParseToken(gomock.Any(), adminToken).
		Return(models.Token{Email: adminEmail, Role: models.RoleAdmin}, nil).AnyTimes()

	a.handler = NewHandler(&service.Services{
		AuthService:      a.auth,
		DiaryService:     a.diary,
		LabService:       a.labs,
		ArchiveService:   a.archive,
		AssistantService: a.assistant,
		AdminService:     a.admin,
		AppInfoService:   a.info,
	}, logger.Nop())
	a.router = a.handler.Init()

	return a
}

// do sends a request through the router. token may be empty.
func (a *testAPI) do(method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	return decodeBody[models.ErrorResponse](t, rec)
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
}
