package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/GIIIB-56/Personal-Nutritionist-Program/models"
	"github.com/GIIIB-56/Personal-Nutritionist-Program/utils"
)

// memoryStore is an in-memory RecordStore for service tests.
type memoryStore struct {
	records []models.Record
	profile models.UserProfile
	nextID  uint
}

func newMemoryStore() *memoryStore {
	return &memoryStore{nextID: 1}
}

func (s *memoryStore) InsertRecord(_ context.Context, record *models.Record) (uint, error) {
	if record.CreatedAt == "" {
		record.CreatedAt = utils.FormatLocalDateTime(time.Now())
	}
	record.ID = s.nextID
	s.nextID++
	s.records = append(s.records, *record)
	return record.ID, nil
}

func (s *memoryStore) ListByDate(_ context.Context, date string) ([]models.Record, error) {
	var out []models.Record
	for _, r := range s.records {
		if strings.HasPrefix(r.CreatedAt, date) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (s *memoryStore) ListRange(_ context.Context, start, end string) ([]models.Record, error) {
	var out []models.Record
	for _, r := range s.records {
		day := r.Day()
		if day >= start && day <= end {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out, nil
}

func (s *memoryStore) GetProfile(_ context.Context) (models.UserProfile, error) {
	return s.profile, nil
}

func (s *memoryStore) UpsertProfile(_ context.Context, profile *models.UserProfile) error {
	profile.ID = 1
	s.profile = *profile
	return nil
}

// stubProvider returns canned content, recording the last request.
type stubProvider struct {
	content string
	err     error
	lastReq CompletionRequest
}

func (p *stubProvider) Complete(_ context.Context, req CompletionRequest) (string, error) {
	p.lastReq = req
	if p.err != nil {
		return "", p.err
	}
	return p.content, nil
}

func stubProviderFactory(p *stubProvider) func(AIConfig) (Provider, error) {
	return func(AIConfig) (Provider, error) { return p, nil }
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
