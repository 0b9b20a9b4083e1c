// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/dia-companion/models"
)

// Field name constants of a diary record, used to restrict validation to a
// subset of fields and as keys of [ValidationError.Fields].
const (
	FieldDatetime     = "datetime"
	FieldGlucose      = "glucose"
	FieldSystolic     = "systolic"
	FieldDiastolic    = "diastolic"
	FieldMeasurements = "measurements"
)

// Accepted measurement ranges.
const (
	MinGlucose   = 2.0
	MaxGlucose   = 30.0
	MinSystolic  = 70
	MaxSystolic  = 200
	MinDiastolic = 40
	MaxDiastolic = 130
)

var healthRecordFields = []string{FieldDatetime, FieldGlucose, FieldSystolic, FieldDiastolic, FieldMeasurements}

// HealthRecordValidator checks diary records before they are saved.
type HealthRecordValidator struct {
}

func NewHealthRecordValidator() Validator {
	return &HealthRecordValidator{}
}

func (v *HealthRecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.HealthRecord:
		return v.validateHealthRecord(ctx, value, fields...)
	case *models.HealthRecord:
		return v.validateHealthRecord(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *HealthRecordValidator) validateHealthRecord(_ context.Context, r models.HealthRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = healthRecordFields
	}

	errs := fieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldDatetime:
			if strings.TrimSpace(r.Datetime) == "" {
				errs.add(FieldDatetime, "date and time are required")
			} else if r.Time().IsZero() {
				errs.add(FieldDatetime, "date and time must be in ISO 8601 format")
			}
		case FieldGlucose:
			if r.Glucose != nil && (*r.Glucose < MinGlucose || *r.Glucose > MaxGlucose) {
				errs.add(FieldGlucose, fmt.Sprintf("glucose must be between %.1f and %.1f mmol/L", MinGlucose, MaxGlucose))
			}
		case FieldSystolic:
			if r.Systolic == nil && r.Diastolic != nil {
				errs.add(FieldSystolic, "systolic pressure is required together with diastolic")
			} else if r.Systolic != nil && (*r.Systolic < MinSystolic || *r.Systolic > MaxSystolic) {
				errs.add(FieldSystolic, fmt.Sprintf("systolic pressure must be between %d and %d mmHg", MinSystolic, MaxSystolic))
			}
		case FieldDiastolic:
			if r.Diastolic == nil && r.Systolic != nil {
				errs.add(FieldDiastolic, "diastolic pressure is required together with systolic")
			} else if r.Diastolic != nil && (*r.Diastolic < MinDiastolic || *r.Diastolic > MaxDiastolic) {
				errs.add(FieldDiastolic, fmt.Sprintf("diastolic pressure must be between %d and %d mmHg", MinDiastolic, MaxDiastolic))
			}
		case FieldMeasurements:
			if r.Glucose == nil && r.Systolic == nil && r.Diastolic == nil {
				errs.add(FieldMeasurements, "enter glucose or blood pressure")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}
