package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/GIIIB-56/Personal-Nutritionist-Program/models"
	"github.com/GIIIB-56/Personal-Nutritionist-Program/utils"
)

// RecordService owns the record lifecycle and the day-bucketed aggregation
// over persisted records.
type RecordService struct {
	store RecordStore
}

func NewRecordService(store RecordStore) *RecordService {
	return &RecordService{store: store}
}

// InsertRecords normalizes and stores one or more submitted items. When
// recordDate names a valid YYYY-MM-DD day the records are backdated to that
// day at the current time of day; otherwise they are stamped "now".
func (s *RecordService) InsertRecords(ctx context.Context, rawItems []map[string]any, recordDate string) ([]uint, error) {
	if len(rawItems) == 0 {
		return nil, fmt.Errorf("missing record in request body: %w", ErrInvalidInput)
	}
	createdAt := ""
	if recordDate != "" {
		if ts, ok := utils.BuildRecordTimestamp(recordDate); ok {
			createdAt = ts
		}
	}
	ids := make([]uint, 0, len(rawItems))
	for _, raw := range rawItems {
		item := NormalizeItem(raw)
		source := "image"
		if v, _ := raw["source"].(string); v == "text" {
			source = "text"
		}
		id, err := s.store.InsertRecord(ctx, models.RecordFromItem(item, source, createdAt))
		if err != nil {
			return nil, fmt.Errorf("failed to insert record: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ListToday returns today's records, newest first.
func (s *RecordService) ListToday(ctx context.Context) ([]models.Record, error) {
	return s.store.ListByDate(ctx, utils.FormatLocalDate(time.Now()))
}

// ListByDate returns the records of one YYYY-MM-DD day, newest first.
func (s *RecordService) ListByDate(ctx context.Context, date string) ([]models.Record, error) {
	return s.store.ListByDate(ctx, date)
}

// SummaryToday sums today's nutrition fields; zero-valued when no records.
func (s *RecordService) SummaryToday(ctx context.Context) (models.DailySummary, error) {
	return s.SummaryForDay(ctx, utils.FormatLocalDate(time.Now()))
}

// SummaryForDay sums the nutrition fields of one day's records.
func (s *RecordService) SummaryForDay(ctx context.Context, day string) (models.DailySummary, error) {
	records, err := s.store.ListByDate(ctx, day)
	if err != nil {
		return models.DailySummary{}, err
	}
	return SummarizeRecords(records), nil
}

// SummaryForRange groups records by calendar day across an inclusive date
// range, one summary per day that has records, ascending by day. Days with
// no records are not synthesized as zero rows.
func (s *RecordService) SummaryForRange(ctx context.Context, start, end string) ([]models.DailySummary, error) {
	records, err := s.store.ListRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	byDay := map[string]*models.DailySummary{}
	for _, record := range records {
		day := record.Day()
		if len(day) < 10 {
			continue
		}
		entry, ok := byDay[day]
		if !ok {
			entry = &models.DailySummary{Day: day}
			byDay[day] = entry
		}
		entry.Add(record)
	}
	out := make([]models.DailySummary, 0, len(byDay))
	for _, entry := range byDay {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}

// SummarizeRecords sums the seven nutrition fields across records.
func SummarizeRecords(records []models.Record) models.DailySummary {
	var summary models.DailySummary
	for _, record := range records {
		summary.Add(record)
	}
	return summary
}
