package weight

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	input := "Date,Time,Recorded,Note\r\n" +
		"2026-01-01,07:00,80.4,morning\r\n" +
		"2026-01-02,07:10,80.1,\r\n" +
		"\r\n" +
		"2026-01-03,07:05,,skipped\r\n" +
		"2026-01-04,07:00,79.8,\r\n"

	samples, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}

	if len(samples) != 3 {
		t.Fatalf("ParseCSV() = %d samples, want 3", len(samples))
	}
	if !samples[0].Date.Equal(day("2026-01-01")) || samples[0].WeightKg != 80.4 {
		t.Errorf("first sample = %+v", samples[0])
	}
	if !samples[2].Date.Equal(day("2026-01-04")) || samples[2].WeightKg != 79.8 {
		t.Errorf("last sample = %+v", samples[2])
	}
}

func TestParseCSV_HeaderCaseInsensitive(t *testing.T) {
	samples, err := ParseCSV(strings.NewReader(" recorded , DATE\n72.5,2026-05-05\n"))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if len(samples) != 1 || samples[0].WeightKg != 72.5 {
		t.Errorf("ParseCSV() = %+v", samples)
	}
}

func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		errContains string
	}{
		{"empty file", "", "empty"},
		{"missing date column", "Day,Recorded\n2026-01-01,80\n", `"Date"`},
		{"missing recorded column", "Date,Weight\n2026-01-01,80\n", `"Recorded"`},
		{"bad date", "Date,Recorded\n01/02/2026,80\n", "line 2"},
		{"short date", "Date,Recorded\n2026-1-2,80\n", "invalid date"},
		{"bad weight", "Date,Recorded\n2026-01-01,eighty\n", "invalid weight"},
		{"header only", "Date,Recorded\n", "no valid rows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
			}
		})
	}
}

func TestValidateSamples(t *testing.T) {
	ok := []Sample{{day("2026-01-01"), 30}, {day("2026-01-02"), 300}}
	if err := ValidateSamples(ok); err != nil {
		t.Errorf("ValidateSamples(bounds) error = %v", err)
	}

	if err := ValidateSamples(nil); !errors.Is(err, ErrEmptyImport) {
		t.Errorf("ValidateSamples(nil) = %v, want ErrEmptyImport", err)
	}

	low := []Sample{{day("2026-01-01"), 80}, {day("2026-01-02"), 29.9}}
	err := ValidateSamples(low)
	if !errors.Is(err, ErrWeightOutOfRange) {
		t.Errorf("ValidateSamples(29.9) = %v, want ErrWeightOutOfRange", err)
	}
	if err != nil && !strings.Contains(err.Error(), "2026-01-02") {
		t.Errorf("error %q should name the date", err)
	}

	many := make([]Sample, MaxImportRows+1)
	for i := range many {
		many[i] = Sample{Date: day("2020-01-01").AddDate(0, 0, i), WeightKg: 80}
	}
	if err := ValidateSamples(many); !errors.Is(err, ErrTooManyRows) {
		t.Errorf("ValidateSamples(%d rows) = %v, want ErrTooManyRows", len(many), err)
	}
}

func TestValidateWeight(t *testing.T) {
	for _, kg := range []float64{30, 75.5, 300} {
		if err := ValidateWeight(kg); err != nil {
			t.Errorf("ValidateWeight(%v) error = %v", kg, err)
		}
	}
	for _, kg := range []float64{0, 29.99, 300.1, -80} {
		if err := ValidateWeight(kg); !errors.Is(err, ErrWeightOutOfRange) {
			t.Errorf("ValidateWeight(%v) = %v, want ErrWeightOutOfRange", kg, err)
		}
	}
	if err := ValidateWeight(math.NaN()); err == nil {
		t.Error("ValidateWeight(NaN) should fail")
	}
}

func ExampleParseDate() {
	d, _ := ParseDate("2026-10-18")
	fmt.Println(d.Weekday())
	// Output: Sunday
}
