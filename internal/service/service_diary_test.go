// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/mock"
	"github.com/MKhiriev/dia-companion/internal/store"
	"github.com/MKhiriev/dia-companion/internal/validators"
	"github.com/MKhiriev/dia-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testEmail = "anna@example.com"

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestDiarySvc wires a diary service to an in-memory diary and a mocked
// edit archive.
func newTestDiarySvc(t *testing.T, ctrl *gomock.Controller) (*diaryService, store.DiaryStore, *mock.MockRecordEditRepository) {
	t.Helper()

	diary := store.NewDiaryStore(store.NewMemoryMedium(), "test", logger.Nop())
	edits := mock.NewMockRecordEditRepository(ctrl)

	svc := NewDiaryService(diary, edits, logger.Nop()).(*diaryService)
	svc.now = func() time.Time { return fixedNow }

	return svc, diary, edits
}

func glucoseRecord(datetime string, glucose float64) models.HealthRecord {
	return models.HealthRecord{Datetime: datetime, Glucose: models.Float64(glucose)}
}

// ── Add ─────────────────────────────────────────────────────────────────────

func TestDiaryService_Add_AssignsIDAndSortsNewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, diary, _ := newTestDiarySvc(t, ctrl)
	ctx := context.Background()

	first, err := svc.Add(ctx, testEmail, glucoseRecord("2024-05-01T08:00", 5.5))
	require.NoError(t, err)
	second, err := svc.Add(ctx, testEmail, glucoseRecord("2024-05-03T08:00", 6.1))
	require.NoError(t, err)
	third, err := svc.Add(ctx, testEmail, glucoseRecord("2024-05-02T08:00", 7.0))
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	got := diary.Load(ctx, testEmail)
	require.Len(t, got, 3)
	assert.Equal(t, []string{second.ID, third.ID, first.ID}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestDiaryService_Add_InvalidRecordIsNotSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, diary, _ := newTestDiarySvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Add(ctx, testEmail, glucoseRecord("2024-05-01T08:00", 45))

	var vErr *validators.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Fields, validators.FieldGlucose)
	assert.Empty(t, diary.Load(ctx, testEmail))
}

func TestDiaryService_Add_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	diary := mock.NewMockDiaryStore(ctrl)
	svc := NewDiaryService(diary, mock.NewMockRecordEditRepository(ctrl), logger.Nop())

	diary.EXPECT().Load(gomock.Any(), testEmail).Return([]models.HealthRecord{})
	diary.EXPECT().Save(gomock.Any(), testEmail, gomock.Len(1)).Return(errors.New("redis down"))

	_, err := svc.Add(context.Background(), testEmail, glucoseRecord("2024-05-01T08:00", 5.5))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
}

// ── Edit ────────────────────────────────────────────────────────────────────

func TestDiaryService_Edit_ReplacesAndArchives(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, diary, edits := newTestDiarySvc(t, ctrl)
	ctx := context.Background()

	original, err := svc.Add(ctx, testEmail, glucoseRecord("2024-05-01T08:00", 5.5))
	require.NoError(t, err)

	updated := original
	updated.Glucose = models.Float64(6.6)
	updated.Comment = "исправлено"

	edits.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.ArchivedRecordEdit) (models.ArchivedRecordEdit, error) {
			assert.Equal(t, testEmail, e.UserEmail)
			assert.Equal(t, original.ID, e.RecordID)
			assert.Equal(t, original, e.OriginalRecord)
			assert.Equal(t, updated, e.UpdatedRecord)
			assert.Equal(t, "2024-06-01T12:00:00Z", e.Datetime)
			e.ID = "edit-1"
			return e, nil
		},
	)

	got, err := svc.Edit(ctx, testEmail, updated)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	stored := diary.Load(ctx, testEmail)
	require.Len(t, stored, 1)
	assert.Equal(t, updated, stored[0])
}

func TestDiaryService_Edit_UnknownRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestDiarySvc(t, ctrl)

	rec := glucoseRecord("2024-05-01T08:00", 5.5)
	rec.ID = "missing"

	_, err := svc.Edit(context.Background(), testEmail, rec)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDiaryService_Edit_InvalidDoesNotArchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, diary, _ := newTestDiarySvc(t, ctrl)
	ctx := context.Background()

	original, err := svc.Add(ctx, testEmail, glucoseRecord("2024-05-01T08:00", 5.5))
	require.NoError(t, err)

	bad := original
	bad.Systolic = models.Int(120)

	_, err = svc.Edit(ctx, testEmail, bad)
	assert.ErrorIs(t, err, validators.ErrValidation)
	assert.Equal(t, []models.HealthRecord{original}, diary.Load(ctx, testEmail))
}

func TestDiaryService_Edit_ArchiveFailureKeepsEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, diary, edits := newTestDiarySvc(t, ctrl)
	ctx := context.Background()

	original, err := svc.Add(ctx, testEmail, glucoseRecord("2024-05-01T08:00", 5.5))
	require.NoError(t, err)

	updated := original
	updated.Glucose = models.Float64(8)

	edits.EXPECT().Add(gomock.Any(), gomock.Any()).Return(models.ArchivedRecordEdit{}, store.ErrStoreUnavailable)

	_, err = svc.Edit(ctx, testEmail, updated)
	require.NoError(t, err)
	assert.Equal(t, 8.0, *diary.Load(ctx, testEmail)[0].Glucose)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestDiaryService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, diary, _ := newTestDiarySvc(t, ctrl)
	ctx := context.Background()

	keep, err := svc.Add(ctx, testEmail, glucoseRecord("2024-05-01T08:00", 5.5))
	require.NoError(t, err)
	drop, err := svc.Add(ctx, testEmail, glucoseRecord("2024-05-02T08:00", 6.5))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, testEmail, drop.ID))
	require.NoError(t, svc.Delete(ctx, testEmail, drop.ID), "second delete is a no-op")
	require.NoError(t, svc.Delete(ctx, "other@example.com", keep.ID))

	assert.Equal(t, []models.HealthRecord{keep}, diary.Load(ctx, testEmail))
}

func TestDiaryService_Delete_UnknownIDDoesNotWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	diary := mock.NewMockDiaryStore(ctrl)
	svc := NewDiaryService(diary, mock.NewMockRecordEditRepository(ctrl), logger.Nop())

	diary.EXPECT().Load(gomock.Any(), testEmail).Return([]models.HealthRecord{{ID: "a"}})

	require.NoError(t, svc.Delete(context.Background(), testEmail, "b"))
}

// ── Import / Export ─────────────────────────────────────────────────────────

func TestDiaryService_Import_DedupesByDatetime(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, diary, _ := newTestDiarySvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Add(ctx, testEmail, glucoseRecord("2024-05-01T08:00", 5.5))
	require.NoError(t, err)

	in := strings.Join([]string{
		"datetime,glucose,systolic,diastolic,comment",
		"2024-05-01T08:00,9.9,,,duplicate of stored",
		"2024-05-02T08:00,6.0,,,new",
		"2024-05-02T08:00,7.0,,,duplicate inside file",
		"2024-05-03T08:00,,125,82,new pressure",
		"garbage,1,,,",
	}, "\n")

	result, err := svc.Import(ctx, testEmail, strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Duplicates)
	assert.Len(t, result.Skipped, 1)

	stored := diary.Load(ctx, testEmail)
	require.Len(t, stored, 3)
	assert.Equal(t, "2024-05-03T08:00", stored[0].Datetime)
	assert.Equal(t, 5.5, *stored[2].Glucose, "existing record must not be overwritten")

	ids := map[string]bool{}
	for _, r := range stored {
		assert.NotEmpty(t, r.ID)
		ids[r.ID] = true
	}
	assert.Len(t, ids, 3)
}

func TestDiaryService_Import_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestDiarySvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Import(ctx, testEmail, strings.NewReader("datetime,glucose\nbad,5\n,6"))
	assert.ErrorIs(t, err, ErrNoValidRows)

	_, err = svc.Import(ctx, testEmail, strings.NewReader("datetime,glucose\n"))
	assert.ErrorIs(t, err, ErrNothingToImport)

	_, err = svc.Import(ctx, testEmail, strings.NewReader("glucose\n5"))
	assert.ErrorIs(t, err, ErrMissingDatetimeColumn)

	_, err = svc.Import(ctx, testEmail, strings.NewReader("datetime,glucose\n2024-05-01T08:00,5"))
	require.NoError(t, err)

	_, err = svc.Import(ctx, testEmail, strings.NewReader("datetime,glucose\n2024-05-01T08:00,5"))
	assert.ErrorIs(t, err, ErrNothingToImport)
	assert.False(t, errors.Is(err, ErrNoValidRows))
}

func TestDiaryService_ExportIsOldestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestDiarySvc(t, ctrl)
	ctx := context.Background()

	for _, dt := range []string{"2024-05-02T08:00", "2024-05-03T08:00", "2024-05-01T08:00"} {
		_, err := svc.Add(ctx, testEmail, glucoseRecord(dt, 5))
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	require.NoError(t, svc.Export(ctx, testEmail, &buf))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "2024-05-01T08:00"))
	assert.True(t, strings.HasPrefix(lines[3], "2024-05-03T08:00"))
}

func TestDiaryService_ExportEmptyDiary(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestDiarySvc(t, ctrl)

	var buf bytes.Buffer
	err := svc.Export(context.Background(), testEmail, &buf)

	assert.ErrorIs(t, err, ErrNoDataToExport)
	assert.Zero(t, buf.Len(), "no header may be written for an empty diary")
}

func TestDiaryService_Import_SkipsNonFiniteGlucose(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, diary, _ := newTestDiarySvc(t, ctrl)
	ctx := context.Background()

	csv := "datetime,glucose,systolic,diastolic,comment\n" +
		"2024-01-01T08:00,5.1,,,\n" +
		"2024-01-02T08:00,6.2,,,\n" +
		"2024-01-03T08:00,NaN,,,bad\n" +
		"2024-01-04T08:00,7.3,,,\n"

	result, err := svc.Import(ctx, testEmail, strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Imported)
	assert.Len(t, result.Skipped, 1)
	assert.Len(t, diary.Load(ctx, testEmail), 3)
}

func TestDiaryService_ExportThenImportIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, diary, _ := newTestDiarySvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Add(ctx, testEmail, models.HealthRecord{Datetime: "2024-05-01T08:00", Systolic: models.Int(120), Diastolic: models.Int(80), Comment: `"кавычки"`})
	require.NoError(t, err)
	before := diary.Load(ctx, testEmail)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(ctx, testEmail, &buf))

	_, err = svc.Import(ctx, testEmail, &buf)
	assert.ErrorIs(t, err, ErrNothingToImport)
	assert.Equal(t, before, diary.Load(ctx, testEmail))
}
