package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"fitcalc/internal/store"
	"fitcalc/internal/weight"
)

// ErrFutureDate is returned when a weigh-in is dated after today
var ErrFutureDate = errors.New("date is in the future")

// WeightData contains everything the weight screen shows for one period
type WeightData struct {
	PeriodDays  int
	Samples     []weight.Sample
	Stats       weight.Stats
	TargetKg    *float64
	Latest      *store.WeightEntry
	LastWeighIn string // "3 days ago"
	EntryCount  string // "1,204 entries"
	Imports     []store.WeightImport
}

// ImportSummary reports the result of a CSV import
type ImportSummary struct {
	Import  store.WeightImport
	Message string
}

// Weight loads the samples for a period and computes their statistics
func (q *QueryService) Weight(periodDays int, now time.Time) (*WeightData, error) {
	periodDays = weight.NormalizePeriod(periodDays)

	stored, err := q.store.GetWeightsSince(weight.PeriodStart(periodDays, now))
	if err != nil {
		return nil, fmt.Errorf("loading weights: %w", err)
	}
	samples := weight.FilterPeriod(stored, periodDays, now)

	target, err := q.targetWeight()
	if err != nil {
		return nil, err
	}

	data := &WeightData{
		PeriodDays: periodDays,
		Samples:    samples,
		Stats:      weight.ComputeStats(samples, target),
		TargetKg:   target,
	}

	latest, err := q.store.GetLatestWeight()
	switch {
	case errors.Is(err, store.ErrWeightNotFound):
	case err != nil:
		return nil, fmt.Errorf("loading latest weight: %w", err)
	default:
		data.Latest = latest
		data.LastWeighIn = lastWeighIn(latest.Date, now)
	}

	count, err := q.store.CountWeights()
	if err != nil {
		return nil, fmt.Errorf("counting weights: %w", err)
	}
	data.EntryCount = pluralEntries(count)

	if data.Imports, err = q.store.GetRecentImports(RecentImportsLimit); err != nil {
		return nil, fmt.Errorf("loading imports: %w", err)
	}

	return data, nil
}

// AddWeight records the weigh-in for a day, replacing any existing one
func (q *QueryService) AddWeight(date time.Time, kg float64) error {
	if date.After(startOfDay(q.now())) {
		return fmt.Errorf("%s: %w", date.Format(weight.DateLayout), ErrFutureDate)
	}
	if err := q.store.UpsertWeight(date, kg); err != nil {
		return fmt.Errorf("saving weight: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"date":      date.Format(weight.DateLayout),
		"weight_kg": kg,
	}).Info("weight saved")
	return nil
}

// DeleteWeight removes the weigh-in for a day
func (q *QueryService) DeleteWeight(date time.Time) error {
	if err := q.store.DeleteWeight(date); err != nil {
		return fmt.Errorf("deleting weight: %w", err)
	}
	logrus.WithField("date", date.Format(weight.DateLayout)).Info("weight deleted")
	return nil
}

// ImportWeights reads a CSV export and upserts every row in one batch
func (q *QueryService) ImportWeights(path string) (*ImportSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	samples, err := weight.ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	imp, err := q.store.ImportWeights(samples, filepath.Base(path), q.now())
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", filepath.Base(path), err)
	}

	logrus.WithFields(logrus.Fields{
		"import_id": imp.ID,
		"source":    imp.Source,
		"inserted":  imp.Inserted,
		"updated":   imp.Updated,
		"total":     imp.Total,
	}).Info("weights imported")

	return &ImportSummary{
		Import: *imp,
		Message: fmt.Sprintf("Imported %s: %s new, %s updated",
			pluralEntries(imp.Total), humanize.Comma(int64(imp.Inserted)), humanize.Comma(int64(imp.Updated))),
	}, nil
}

// SetTargetWeight saves the target weight; nil clears it
func (q *QueryService) SetTargetWeight(kg *float64) error {
	if kg != nil {
		if err := weight.ValidateWeight(*kg); err != nil {
			return err
		}
	}
	if err := q.store.SetTargetWeight(kg); err != nil {
		return fmt.Errorf("saving target weight: %w", err)
	}
	if kg == nil {
		logrus.Info("target weight cleared")
	} else {
		logrus.WithField("target_kg", *kg).Info("target weight updated")
	}
	return nil
}

// targetWeight prefers the saved target over the configured one
func (q *QueryService) targetWeight() (*float64, error) {
	saved, err := q.store.GetTargetWeight()
	if err != nil {
		return nil, fmt.Errorf("loading target weight: %w", err)
	}
	if saved != nil {
		return saved, nil
	}
	return q.cfg.Weight.TargetKg, nil
}

func pluralEntries(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return humanize.Comma(int64(n)) + " entries"
}

// lastWeighIn describes a weigh-in date relative to today
func lastWeighIn(date, now time.Time) string {
	today := startOfDay(now)
	if !date.Before(today) {
		return "today"
	}
	return humanize.RelTime(date, today, "ago", "from now")
}

// startOfDay truncates t to midnight UTC, the day boundary weigh-ins use
func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
