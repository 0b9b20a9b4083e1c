package store

import (
	"context"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/models"
)

type labResultRepository struct {
	collection[models.LabResult]
}

// NewLabResultRepository constructs a [LabResultRepository] over the
// "lab_results" table of store.
func NewLabResultRepository(store *DocumentStore, ids *utils.UUIDGenerator, logger *logger.Logger) LabResultRepository {
	logger.Debug().Msg("creating lab result repository")
	return &labResultRepository{collection[models.LabResult]{
		store:   store,
		ids:     ids,
		table:   labResultsTable,
		columns: labResultColumns,
		row: func(r models.LabResult) ([]any, error) {
			return []any{r.ID, r.UserEmail, r.Datetime, string(r.Type), r.FileName, r.FileType, r.FileContent}, nil
		},
		scan: func(s rowScanner) (models.LabResult, error) {
			var r models.LabResult
			err := s.Scan(&r.ID, &r.UserEmail, &r.Datetime, &r.Type, &r.FileName, &r.FileType, &r.FileContent)
			return r, err
		},
		datetime: func(r models.LabResult) string { return r.Datetime },
	}}
}

func (r *labResultRepository) Add(ctx context.Context, result models.LabResult) (models.LabResult, error) {
	result.ID = r.ids.Generate()
	if err := r.add(ctx, result); err != nil {
		return models.LabResult{}, err
	}
	return result, nil
}

func (r *labResultRepository) GetAll(ctx context.Context, email string) []models.LabResult {
	return r.getAll(ctx, email)
}

func (r *labResultRepository) Delete(ctx context.Context, email, id string) error {
	return r.delete(ctx, email, id)
}
