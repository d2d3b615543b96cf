package models

import "time"

const (
	PrefWeekStart       = "week_start"
	PrefVisibleSections = "visible_sections"
	PrefHabitTemplates  = "habit_templates"
)

type Preference struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_user_pref"`
	Name      string    `gorm:"not null;uniqueIndex:uidx_user_pref"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time
}
