// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"time"
)

// HealthRecord is a single diary entry. At least one measurement is
// present: glucose, or the systolic/diastolic pair. Systolic and diastolic
// are always set together.
type HealthRecord struct {
	// ID is unique within the owner's diary.
	ID string `json:"id"`

	// Datetime is the ISO 8601 timestamp of the measurement.
	Datetime string `json:"datetime"`

	// Glucose is the blood glucose level in mmol/L.
	Glucose *float64 `json:"glucose,omitempty"`

	// Systolic is the upper blood pressure value in mmHg.
	Systolic *int `json:"systolic,omitempty"`

	// Diastolic is the lower blood pressure value in mmHg.
	Diastolic *int `json:"diastolic,omitempty"`

	Comment string `json:"comment,omitempty"`
}

// HasPressure reports whether both blood pressure values are present.
func (r HealthRecord) HasPressure() bool {
	return r.Systolic != nil && r.Diastolic != nil
}

// Time parses Datetime. The zero time is returned for unparseable values.
func (r HealthRecord) Time() time.Time {
	return ParseDatetime(r.Datetime)
}

// datetimeLayouts lists the formats accepted for record timestamps, from the
// most to the least specific.
var datetimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

// ParseDatetime parses an ISO 8601 timestamp in any of the layouts produced by
// browsers, spreadsheets and this service. It returns the zero time when s
// does not match any of them.
func ParseDatetime(s string) time.Time {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SortByDatetimeDesc orders records newest first. Records with equal
// timestamps keep their relative order.
func SortByDatetimeDesc(records []HealthRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Time().After(records[j].Time())
	})
}

// SortByDatetimeAsc orders records oldest first.
func SortByDatetimeAsc(records []HealthRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Time().Before(records[j].Time())
	})
}

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
