package domain

import "time"

// UserPreference is one stored dashboard preference of a browser session.
type UserPreference struct {
	SessionID string    `gorm:"column:session_id;primaryKey;type:varchar(64)" json:"session_id"`
	Key       string    `gorm:"column:pref_key;primaryKey;type:varchar(64)" json:"key"`
	Value     string    `gorm:"column:value;not null" json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (UserPreference) TableName() string {
	return "UserPreferences"
}
