package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/dia-companion/internal/validators"
	"github.com/MKhiriev/dia-companion/models"
)

const recordDatetimeLayout = "2006-01-02T15:04"

const (
	fieldDatetime = iota
	fieldGlucose
	fieldSystolic
	fieldDiastolic
	fieldComment
)

var (
	msgDatetimeFormat = "Дата и время: ГГГГ-ММ-ДД ЧЧ:ММ"
	msgGlucoseRange   = fmt.Sprintf("Глюкоза: %.1f - %.1f ммоль/л", validators.MinGlucose, validators.MaxGlucose)
	msgSystolicRange  = fmt.Sprintf("Систолическое: %d - %d мм рт.ст.", validators.MinSystolic, validators.MaxSystolic)
	msgDiastolicRange = fmt.Sprintf("Диастолическое: %d - %d мм рт.ст.", validators.MinDiastolic, validators.MaxDiastolic)
)

func newRecordForm() form {
	f := newForm("Дата и время", "Глюкоза, ммоль/л", "Систолическое", "Диастолическое", "Комментарий")
	f.inputs[fieldDatetime].Placeholder = "2024-06-01T08:30"
	f.inputs[fieldGlucose].Placeholder = "5.6"
	f.inputs[fieldSystolic].Placeholder = "120"
	f.inputs[fieldDiastolic].Placeholder = "80"
	f.inputs[fieldComment].CharLimit = 500
	return f
}

func fillRecordForm(f *form, r models.HealthRecord) {
	datetime := r.Datetime
	if t := r.Time(); !t.IsZero() {
		datetime = t.Format(recordDatetimeLayout)
	}
	f.set(fieldDatetime, datetime)

	if r.Glucose != nil {
		f.set(fieldGlucose, strconv.FormatFloat(*r.Glucose, 'f', -1, 64))
	}
	if r.Systolic != nil {
		f.set(fieldSystolic, strconv.Itoa(*r.Systolic))
	}
	if r.Diastolic != nil {
		f.set(fieldDiastolic, strconv.Itoa(*r.Diastolic))
	}
	f.set(fieldComment, r.Comment)
}

// recordFromForm reads the form into a copy of base. Invalid fields are
// marked on the form; summary is set when no measurement was entered.
func recordFromForm(ctx context.Context, f *form, base models.HealthRecord) (record models.HealthRecord, summary string, ok bool) {
	f.errs = map[int]string{}
	record = base
	record.Glucose, record.Systolic, record.Diastolic = nil, nil, nil
	record.Comment = f.value(fieldComment)

	if t := models.ParseDatetime(f.value(fieldDatetime)); t.IsZero() {
		f.errs[fieldDatetime] = msgDatetimeFormat
	} else {
		record.Datetime = t.Format(recordDatetimeLayout)
	}

	if v := strings.ReplaceAll(f.value(fieldGlucose), ",", "."); v != "" {
		g, err := strconv.ParseFloat(v, 64)
		if err != nil {
			f.errs[fieldGlucose] = msgGlucoseRange
		} else {
			record.Glucose = &g
		}
	}
	if v := f.value(fieldSystolic); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil {
			f.errs[fieldSystolic] = msgSystolicRange
		} else {
			record.Systolic = &s
		}
	}
	if v := f.value(fieldDiastolic); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			f.errs[fieldDiastolic] = msgDiastolicRange
		} else {
			record.Diastolic = &d
		}
	}

	err := validators.NewHealthRecordValidator().Validate(ctx, record,
		validators.FieldGlucose, validators.FieldSystolic, validators.FieldDiastolic, validators.FieldMeasurements)

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		for field := range vErr.Fields {
			switch field {
			case validators.FieldGlucose:
				markField(f, fieldGlucose, msgGlucoseRange)
			case validators.FieldSystolic:
				if record.Systolic == nil {
					markField(f, fieldSystolic, "Введите систолическое")
				} else {
					markField(f, fieldSystolic, msgSystolicRange)
				}
			case validators.FieldDiastolic:
				if record.Diastolic == nil {
					markField(f, fieldDiastolic, "Введите диастолическое")
				} else {
					markField(f, fieldDiastolic, msgDiastolicRange)
				}
			case validators.FieldMeasurements:
				summary = msgNeedOneMeasurement
			}
		}
	}

	// a value that failed to parse is nil here and must not be reported
	// as missing
	if len(f.errs) > 0 {
		summary = ""
	}

	return record, summary, len(f.errs) == 0 && summary == ""
}

// markField keeps the first error of a field.
func markField(f *form, i int, msg string) {
	if _, ok := f.errs[i]; !ok {
		f.errs[i] = msg
	}
}
