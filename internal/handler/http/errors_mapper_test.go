package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/dia-companion/internal/app"
	"github.com/MKhiriev/dia-companion/internal/service"
	"github.com/MKhiriev/dia-companion/internal/store"
	"github.com/MKhiriev/dia-companion/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"validation", &validators.ValidationError{Fields: map[string]string{"a": "b"}}, http.StatusUnprocessableEntity, app.MsgValidationFailed},
		{"wrapped duplicate", fmt.Errorf("x: %w", store.ErrUserAlreadyExists), http.StatusConflict, app.MsgUserAlreadyExists},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidEmailPassword},
		{"assistant", fmt.Errorf("%w: %w", service.ErrAssistantUnavailable, errors.New("503")), http.StatusBadGateway, app.MsgAssistantUnavailable},
		{"store", store.ErrStoreUnavailable, http.StatusServiceUnavailable, app.MsgStoreUnavailable},
		{"self delete", service.ErrCannotDeleteSelf, http.StatusForbidden, app.MsgCannotDeleteSelf},
		{"too large", fmt.Errorf("read: %w", &http.MaxBytesError{Limit: 1}), http.StatusRequestEntityTooLarge, app.MsgRequestTooLarge},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
