package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/dia-companion/internal/app"
	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/service"
	"github.com/MKhiriev/dia-companion/internal/store"
	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/internal/validators"
	"github.com/MKhiriev/dia-companion/models"
)

type errorMapping struct {
	status  int
	message string
}

// errorStatusMap translates service and store errors into responses. The
// keys are disjoint: no error in the tree wraps two of them.
var errorStatusMap = map[error]errorMapping{
	validators.ErrValidation:           {http.StatusUnprocessableEntity, app.MsgValidationFailed},
	validators.ErrUnsupportedType:      {http.StatusInternalServerError, app.MsgInternalServerError},
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrWrongPassword:           {http.StatusUnauthorized, app.MsgInvalidEmailPassword},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrTokenCreationFailed:     {http.StatusInternalServerError, app.MsgInternalServerError},
	service.ErrRecordNotFound:          {http.StatusNotFound, app.MsgRecordNotFound},
	service.ErrNoValidRows:             {http.StatusUnprocessableEntity, app.MsgNoValidRows},
	service.ErrMissingDatetimeColumn:   {http.StatusUnprocessableEntity, app.MsgMissingDatetimeColumn},
	service.ErrNoDataToExport:          {http.StatusNotFound, app.MsgNoDataToExport},
	service.ErrNotEnoughRecords:        {http.StatusUnprocessableEntity, app.MsgNotEnoughRecords},
	service.ErrAssistantUnavailable:    {http.StatusBadGateway, app.MsgAssistantUnavailable},
	service.ErrCannotDeleteSelf:        {http.StatusForbidden, app.MsgCannotDeleteSelf},

	store.ErrUserAlreadyExists: {http.StatusConflict, app.MsgUserAlreadyExists},
	store.ErrStoreUnavailable:  {http.StatusServiceUnavailable, app.MsgStoreUnavailable},
}

func statusFromError(err error) (int, string) {
	for target, mapping := range errorStatusMap {
		if errors.Is(err, target) {
			return mapping.status, mapping.message
		}
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, app.MsgRequestTooLarge
	}

	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the mapped status. Validation errors
// carry their per-field messages.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg(message)
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", status).Msg(message)
	}

	body := models.ErrorResponse{Error: message}

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		body.Fields = vErr.Fields
	}

	utils.WriteJSON(w, body, status)
}

// writeMessage answers with a fixed status and message.
func writeMessage(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
