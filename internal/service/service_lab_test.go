package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/mock"
	"github.com/MKhiriev/dia-companion/internal/store"
	"github.com/MKhiriev/dia-companion/internal/validators"
	"github.com/MKhiriev/dia-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLab() models.LabResult {
	return models.LabResult{
		Datetime:    "2024-05-01T09:00",
		Type:        models.LabResultBlood,
		FileName:    "hba1c.png",
		FileType:    "image/png",
		FileContent: base64.StdEncoding.EncodeToString([]byte("\x89PNG fake")),
	}
}

func TestLabService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	labs := mock.NewMockLabResultRepository(ctrl)
	lab := testLab()
	lab.UserEmail = "spoofed@example.com"

	want := testLab()
	want.UserEmail = testEmail
	labs.EXPECT().Add(gomock.Any(), want).DoAndReturn(
		func(_ context.Context, l models.LabResult) (models.LabResult, error) {
			l.ID = "lab-1"
			return l, nil
		},
	)

	got, err := NewLabService(labs, logger.Nop()).Add(context.Background(), testEmail, lab)
	require.NoError(t, err)
	assert.Equal(t, "lab-1", got.ID)
	assert.Equal(t, testEmail, got.UserEmail)
}

func TestLabService_Add_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lab := testLab()
	lab.FileType = "application/pdf"

	_, err := NewLabService(mock.NewMockLabResultRepository(ctrl), logger.Nop()).Add(context.Background(), testEmail, lab)
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestLabService_Add_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	labs := mock.NewMockLabResultRepository(ctrl)
	labs.EXPECT().Add(gomock.Any(), gomock.Any()).Return(models.LabResult{}, store.ErrStoreUnavailable)

	_, err := NewLabService(labs, logger.Nop()).Add(context.Background(), testEmail, testLab())
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

func TestLabService_ListAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	labs := mock.NewMockLabResultRepository(ctrl)
	labs.EXPECT().GetAll(gomock.Any(), testEmail).Return([]models.LabResult{})
	labs.EXPECT().Delete(gomock.Any(), testEmail, "lab-1").Return(nil)

	svc := NewLabService(labs, logger.Nop())
	assert.Empty(t, svc.List(context.Background(), testEmail))
	assert.NoError(t, svc.Delete(context.Background(), testEmail, "lab-1"))
}
