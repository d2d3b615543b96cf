package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	WeeklyEntries *WeeklyEntryRepository
	Preferences   *PreferenceRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		WeeklyEntries: NewWeeklyEntryRepository(database),
		Preferences:   NewPreferenceRepository(database),
	}
}
