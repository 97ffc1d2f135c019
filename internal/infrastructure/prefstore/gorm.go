package prefstore

import (
	"context"
	"errors"

	"clinic-dashboard/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProvider stores preferences as rows of the UserPreferences table.
type GormProvider struct {
	DB *gorm.DB
}

func (p *GormProvider) ForSession(sessionID string) Store {
	return &gormStore{db: p.DB, sid: sessionID}
}

type gormStore struct {
	db  *gorm.DB
	sid string
}

func (s *gormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var pref domain.UserPreference
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND pref_key = ?", s.sid, key).
		First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return pref.Value, true, nil
}

func (s *gormStore) Set(ctx context.Context, key, value string) error {
	pref := domain.UserPreference{SessionID: s.sid, Key: key, Value: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "pref_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
}
