package service

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/models"
)

var csvHeader = []string{"datetime", "glucose", "systolic", "diastolic", "comment"}

// writeCSV writes records in the given order. The comment column is always
// quoted; the other columns never need quoting.
func writeCSV(w io.Writer, records []models.HealthRecord) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(csvHeader, ",")); err != nil {
		return err
	}

	for _, r := range records {
		line := strings.Join([]string{
			r.Datetime,
			formatFloat(r.Glucose),
			formatInt(r.Systolic),
			formatInt(r.Diastolic),
			`"` + strings.ReplaceAll(r.Comment, `"`, `""`) + `"`,
		}, ",")

		if _, err := bw.WriteString("\n" + line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// csvImport is the outcome of parsing an import file.
type csvImport struct {
	records  []models.HealthRecord
	skipped  []string
	dataRows int
}

// parseCSV reads diary rows. Header names are matched case-insensitively and
// only the datetime column is mandatory. Rows without a parseable datetime or
// without any measurement are skipped with a warning.
func parseCSV(r io.Reader, log *logger.Logger) (csvImport, error) {
	var result csvImport

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return result, fmt.Errorf("%w: file is empty", ErrNoValidRows)
	}
	if err != nil {
		return result, fmt.Errorf("%w: unreadable header: %w", ErrNoValidRows, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["datetime"]; !ok {
		return result, ErrMissingDatetimeColumn
	}

	for rowNum := 2; ; rowNum++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var parseErr *csv.ParseError
		if err != nil && !errors.As(err, &parseErr) {
			return result, fmt.Errorf("error reading csv: %w", err)
		}

		result.dataRows++
		if err != nil {
			result.skip(log, rowNum, parseErr.Err.Error())
			continue
		}

		record, reason := parseRow(row, columns)
		if reason != "" {
			result.skip(log, rowNum, reason)
			continue
		}
		result.records = append(result.records, record)
	}

	return result, nil
}

func (c *csvImport) skip(log *logger.Logger, rowNum int, reason string) {
	log.Warn().Int("row", rowNum).Str("reason", reason).Msg("skipping CSV row")
	c.skipped = append(c.skipped, fmt.Sprintf("row %d: %s", rowNum, reason))
}

func parseRow(row []string, columns map[string]int) (models.HealthRecord, string) {
	get := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	record := models.HealthRecord{
		Datetime: get("datetime"),
		Comment:  get("comment"),
	}
	if record.Datetime == "" || record.Time().IsZero() {
		return record, "invalid or missing datetime"
	}

	if v := get("glucose"); v != "" {
		glucose, err := strconv.ParseFloat(v, 64)
		if err == nil && !math.IsNaN(glucose) && !math.IsInf(glucose, 0) {
			record.Glucose = &glucose
		}
	}

	systolicVal, diastolicVal := get("systolic"), get("diastolic")
	if systolicVal != "" && diastolicVal != "" {
		systolic, errS := strconv.Atoi(systolicVal)
		diastolic, errD := strconv.Atoi(diastolicVal)
		if errS == nil && errD == nil {
			record.Systolic = &systolic
			record.Diastolic = &diastolic
		}
	}

	if record.Glucose == nil && !record.HasPressure() {
		return record, "no valid measurement data"
	}

	return record, ""
}
