package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/store"
	"github.com/MKhiriev/dia-companion/internal/validators"
	"github.com/MKhiriev/dia-companion/models"
)

type labService struct {
	labs      store.LabResultRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewLabService(labs store.LabResultRepository, logger *logger.Logger) LabService {
	return &labService{
		labs:      labs,
		validator: validators.NewLabResultValidator(),
		logger:    logger,
	}
}

func (s *labService) Add(ctx context.Context, email string, result models.LabResult) (models.LabResult, error) {
	if err := s.validator.Validate(ctx, result); err != nil {
		return models.LabResult{}, err
	}

	result.UserEmail = email
	saved, err := s.labs.Add(ctx, result)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "labService.Add").Msg("error saving lab result")
		return models.LabResult{}, fmt.Errorf("error saving lab result: %w", err)
	}

	return saved, nil
}

func (s *labService) List(ctx context.Context, email string) []models.LabResult {
	return s.labs.GetAll(ctx, email)
}

func (s *labService) Delete(ctx context.Context, email, id string) error {
	return s.labs.Delete(ctx, email, id)
}
