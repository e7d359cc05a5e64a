package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/GIIIB-56/Personal-Nutritionist-Program/models"
	"github.com/GIIIB-56/Personal-Nutritionist-Program/utils"
)

// RecordStore is the persistence boundary for nutrition records and the
// singleton user profile. Inserts are independent appends with store-assigned
// monotonic ids; records are never updated or deleted.
type RecordStore interface {
	InsertRecord(ctx context.Context, record *models.Record) (uint, error)
	ListByDate(ctx context.Context, date string) ([]models.Record, error)
	ListRange(ctx context.Context, start, end string) ([]models.Record, error)
	GetProfile(ctx context.Context) (models.UserProfile, error)
	UpsertProfile(ctx context.Context, profile *models.UserProfile) error
}

// GormRecordStore backs RecordStore with a gorm-managed table. created_at is
// a local date-time string, so day filters are plain prefix comparisons.
type GormRecordStore struct {
	db *gorm.DB
}

func NewGormRecordStore(db *gorm.DB) *GormRecordStore {
	return &GormRecordStore{db: db}
}

func (s *GormRecordStore) InsertRecord(ctx context.Context, record *models.Record) (uint, error) {
	if record.CreatedAt == "" {
		record.CreatedAt = utils.FormatLocalDateTime(time.Now())
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return 0, err
	}
	return record.ID, nil
}

func (s *GormRecordStore) ListByDate(ctx context.Context, date string) ([]models.Record, error) {
	var records []models.Record
	err := s.db.WithContext(ctx).
		Where("created_at LIKE ?", date+"%").
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (s *GormRecordStore) ListRange(ctx context.Context, start, end string) ([]models.Record, error) {
	var records []models.Record
	err := s.db.WithContext(ctx).
		Where("substr(created_at, 1, 10) BETWEEN ? AND ?", start, end).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

func (s *GormRecordStore) GetProfile(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).First(&profile, 1).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.UserProfile{}, nil
		}
		return models.UserProfile{}, err
	}
	return profile, nil
}

func (s *GormRecordStore) UpsertProfile(ctx context.Context, profile *models.UserProfile) error {
	profile.ID = 1
	return s.db.WithContext(ctx).Save(profile).Error
}
