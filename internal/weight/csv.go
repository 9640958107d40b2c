package weight

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for samples
const DateLayout = "2006-01-02"

// Import limits, matching what the weight log accepts
const (
	MinWeightKg   = 30
	MaxWeightKg   = 300
	MaxImportRows = 5000
)

var (
	// ErrEmptyImport is returned when a CSV has no usable rows
	ErrEmptyImport = errors.New("no valid rows found")
	// ErrTooManyRows is returned when an import exceeds MaxImportRows
	ErrTooManyRows = fmt.Errorf("at most %d rows per import", MaxImportRows)
	// ErrWeightOutOfRange is returned for weights outside MinWeightKg..MaxWeightKg
	ErrWeightOutOfRange = fmt.Errorf("weight must be between %d and %d kg", MinWeightKg, MaxWeightKg)
)

// ParseCSV reads weigh-ins from a scale export. The header must contain
// "Date" (YYYY-MM-DD) and "Recorded" (kg) columns, matched case-insensitively.
// Rows missing either value are skipped; malformed values are errors.
func ParseCSV(r io.Reader) ([]Sample, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty CSV: %w", ErrEmptyImport)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	dateIdx, recordedIdx := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "date":
			dateIdx = i
		case "recorded":
			recordedIdx = i
		}
	}
	if dateIdx == -1 {
		return nil, errors.New(`column "Date" not found`)
	}
	if recordedIdx == -1 {
		return nil, errors.New(`column "Recorded" not found`)
	}

	var samples []Sample
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading rows: %w", err)
		}
		line, _ := reader.FieldPos(0)

		dateStr := field(record, dateIdx)
		weightStr := field(record, recordedIdx)
		if dateStr == "" || weightStr == "" {
			continue
		}

		date, err := ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date %q: %w", line, dateStr, err)
		}

		kg, err := strconv.ParseFloat(weightStr, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid weight %q", line, weightStr)
		}

		samples = append(samples, Sample{Date: date, WeightKg: kg})
	}

	if len(samples) == 0 {
		return nil, ErrEmptyImport
	}
	return samples, nil
}

// ValidateSamples checks an import batch before anything is written
func ValidateSamples(samples []Sample) error {
	if len(samples) == 0 {
		return ErrEmptyImport
	}
	if len(samples) > MaxImportRows {
		return ErrTooManyRows
	}
	for _, s := range samples {
		if err := ValidateWeight(s.WeightKg); err != nil {
			return fmt.Errorf("%s: %w", s.Date.Format(DateLayout), err)
		}
	}
	return nil
}

// ValidateWeight checks a single weight against the accepted range
func ValidateWeight(kg float64) error {
	if !(kg >= MinWeightKg && kg <= MaxWeightKg) {
		return fmt.Errorf("%.1f kg: %w", kg, ErrWeightOutOfRange)
	}
	return nil
}

// ParseDate parses a strict YYYY-MM-DD date at UTC midnight
func ParseDate(s string) (time.Time, error) {
	if len(s) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("want %s", DateLayout)
	}
	return time.Parse(DateLayout, s)
}

func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
