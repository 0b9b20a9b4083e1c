package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/dia-companion/internal/app"
	"github.com/MKhiriev/dia-companion/internal/service"
	"github.com/MKhiriev/dia-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListRecords(t *testing.T) {
	a := newTestAPI(t)
	records := []models.HealthRecord{
		{ID: "2", Datetime: "2024-05-02T08:00", Glucose: models.Float64(6)},
		{ID: "1", Datetime: "2024-05-01T08:00", Systolic: models.Int(120), Diastolic: models.Int(80)},
	}
	a.diary.EXPECT().List(gomock.Any(), userEmail).Return(records)

	rec := a.do(http.MethodGet, "/api/records", userToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, records, decodeBody[[]models.HealthRecord](t, rec))
}

func TestListRecords_EmptyIsArray(t *testing.T) {
	a := newTestAPI(t)
	a.diary.EXPECT().List(gomock.Any(), userEmail).Return(nil)

	rec := a.do(http.MethodGet, "/api/records", userToken, nil)

	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAddRecord(t *testing.T) {
	a := newTestAPI(t)
	in := models.HealthRecord{Datetime: "2024-05-01T08:00", Glucose: models.Float64(5.5), Comment: "натощак"}

	a.diary.EXPECT().Add(gomock.Any(), userEmail, in).DoAndReturn(
		func(_ context.Context, _ string, r models.HealthRecord) (models.HealthRecord, error) {
			r.ID = "new-id"
			return r, nil
		},
	)

	rec := a.do(http.MethodPost, "/api/records", userToken, jsonBody(t, in))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "new-id", decodeBody[models.HealthRecord](t, rec).ID)
}

func TestEditRecord_UsesPathID(t *testing.T) {
	a := newTestAPI(t)
	body := models.HealthRecord{ID: "ignored", Datetime: "2024-05-01T08:00", Glucose: models.Float64(7)}

	a.diary.EXPECT().Edit(gomock.Any(), userEmail, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, r models.HealthRecord) (models.HealthRecord, error) {
			assert.Equal(t, "rec-1", r.ID)
			return r, nil
		},
	)

	rec := a.do(http.MethodPut, "/api/records/rec-1", userToken, jsonBody(t, body))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEditRecord_NotFound(t *testing.T) {
	a := newTestAPI(t)
	a.diary.EXPECT().Edit(gomock.Any(), userEmail, gomock.Any()).
		Return(models.HealthRecord{}, fmt.Errorf("%w: rec-9", service.ErrRecordNotFound))

	rec := a.do(http.MethodPut, "/api/records/rec-9", userToken, jsonBody(t, models.HealthRecord{Datetime: "2024-05-01T08:00"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgRecordNotFound, errorBody(t, rec).Error)
}

func TestDeleteRecord(t *testing.T) {
	a := newTestAPI(t)
	a.diary.EXPECT().Delete(gomock.Any(), userEmail, "rec-1").Return(nil)

	rec := a.do(http.MethodDelete, "/api/records/rec-1", userToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestImportRecords(t *testing.T) {
	a := newTestAPI(t)
	csv := "datetime,glucose\n2024-05-01T08:00,5.5"

	a.diary.EXPECT().Import(gomock.Any(), userEmail, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, r io.Reader) (models.ImportResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, csv, string(data))
			return models.ImportResult{Imported: 1}, nil
		},
	)

	rec := a.do(http.MethodPost, "/api/records/import", userToken, strings.NewReader(csv))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ImportResult{Imported: 1}, decodeBody[models.ImportResult](t, rec))
}

func TestImportRecords_Errors(t *testing.T) {
	tests := []struct {
		err         error
		wantMessage string
	}{
		{service.ErrNoValidRows, app.MsgNoValidRows},
		{service.ErrMissingDatetimeColumn, app.MsgMissingDatetimeColumn},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			a := newTestAPI(t)
			a.diary.EXPECT().Import(gomock.Any(), userEmail, gomock.Any()).Return(models.ImportResult{}, tt.err)

			rec := a.do(http.MethodPost, "/api/records/import", userToken, strings.NewReader("x"))

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Equal(t, tt.wantMessage, errorBody(t, rec).Error)
		})
	}
}

func TestImportRecords_NothingNewIsNotAnError(t *testing.T) {
	a := newTestAPI(t)
	a.diary.EXPECT().Import(gomock.Any(), userEmail, gomock.Any()).
		Return(models.ImportResult{Duplicates: 2}, service.ErrNothingToImport)

	rec := a.do(http.MethodPost, "/api/records/import", userToken, strings.NewReader("datetime\n2024-05-01T08:00"))

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.ImportResult](t, rec)
	assert.Equal(t, 0, got.Imported)
	assert.Equal(t, 2, got.Duplicates)
	assert.Equal(t, app.MsgNothingToImport, got.Message)
	assert.NotEqual(t, app.MsgNoValidRows, got.Message)
}

func TestExportRecords_EmptyDiary(t *testing.T) {
	a := newTestAPI(t)
	a.diary.EXPECT().Export(gomock.Any(), userEmail, gomock.Any()).Return(service.ErrNoDataToExport)

	rec := a.do(http.MethodGet, "/api/records/export", userToken, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgNoDataToExport, errorBody(t, rec).Error)
	assert.NotContains(t, rec.Header().Get("Content-Type"), "text/csv")
}

func TestExportRecords(t *testing.T) {
	a := newTestAPI(t)
	a.diary.EXPECT().Export(gomock.Any(), userEmail, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, w io.Writer) error {
			_, err := io.WriteString(w, "datetime,glucose,systolic,diastolic,comment")
			return err
		},
	)

	rec := a.do(http.MethodGet, "/api/records/export", userToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "diary.csv")
	assert.Equal(t, "datetime,glucose,systolic,diastolic,comment", rec.Body.String())
}
