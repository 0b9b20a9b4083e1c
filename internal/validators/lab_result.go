package validators

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MKhiriev/dia-companion/models"
)

const (
	FieldType        = "type"
	FieldFileName    = "fileName"
	FieldFileType    = "fileType"
	FieldFileContent = "fileContent"
)

// MaxImageSize is the largest accepted decoded image, in bytes.
const MaxImageSize = 5 * 1024 * 1024

// LabResultValidator checks uploaded lab results and images sent for
// analysis.
type LabResultValidator struct {
}

func NewLabResultValidator() Validator {
	return &LabResultValidator{}
}

func (v *LabResultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LabResult:
		return v.validateLabResult(ctx, value, fields...)
	case *models.LabResult:
		return v.validateLabResult(ctx, *value, fields...)
	case models.ImageAnalysisRequest:
		return v.validateImage(value)
	case *models.ImageAnalysisRequest:
		return v.validateImage(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *LabResultValidator) validateLabResult(_ context.Context, r models.LabResult, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDatetime, FieldType, FieldFileName, FieldFileType, FieldFileContent}
	}

	errs := fieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldDatetime:
			if models.ParseDatetime(r.Datetime).IsZero() {
				errs.add(FieldDatetime, "date must be in ISO 8601 format")
			}
		case FieldType:
			if !r.Type.IsValid() {
				errs.add(FieldType, "type must be one of blood, urine, other")
			}
		case FieldFileName:
			if strings.TrimSpace(r.FileName) == "" {
				errs.add(FieldFileName, "file name is required")
			}
		case FieldFileType:
			checkImageType(errs, r.FileType)
		case FieldFileContent:
			checkImageContent(errs, r.FileContent)
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *LabResultValidator) validateImage(r models.ImageAnalysisRequest) error {
	errs := fieldErrors{}
	checkImageType(errs, r.FileType)
	checkImageContent(errs, r.FileContent)
	return errs.err()
}

func checkImageType(errs fieldErrors, mime string) {
	if !strings.HasPrefix(strings.ToLower(mime), "image/") {
		errs.add(FieldFileType, "only image files are accepted")
	}
}

func checkImageContent(errs fieldErrors, content string) {
	if content == "" {
		errs.add(FieldFileContent, "file content is required")
		return
	}

	// cheap upper bound first, then the exact size
	if base64.StdEncoding.DecodedLen(len(content)) > MaxImageSize+2 {
		errs.add(FieldFileContent, fmt.Sprintf("file must not exceed %d MB", MaxImageSize/(1024*1024)))
		return
	}

	decoded, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		errs.add(FieldFileContent, "file content must be base64 encoded")
		return
	}
	if len(decoded) > MaxImageSize {
		errs.add(FieldFileContent, fmt.Sprintf("file must not exceed %d MB", MaxImageSize/(1024*1024)))
	}
}
