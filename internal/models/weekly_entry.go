package models

import (
	"time"

	"github.com/marisolvale/weekling/internal/journal"
)

// WeeklyEntry is one user's diary row for one calendar week. WeekStart is the
// canonical Sunday-anchored YYYY-MM-DD key; it never follows the display
// week-start preference.
type WeeklyEntry struct {
	ID              uint                 `gorm:"primaryKey"`
	UserID          uint                 `gorm:"not null;uniqueIndex:uidx_user_week"`
	WeekStart       string               `gorm:"not null;uniqueIndex:uidx_user_week"`
	HabitTrackers   []string             `gorm:"serializer:json"`
	HabitCompletion map[string][]bool    `gorm:"serializer:json"`
	MoodScores      []int                `gorm:"serializer:json"`
	Meals           map[int]journal.Meal `gorm:"serializer:json"`
	Events          []journal.Event      `gorm:"serializer:json"`
	Grateful        string
	Comment         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
