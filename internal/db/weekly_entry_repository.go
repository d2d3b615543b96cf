package db

import (
	"github.com/marisolvale/weekling/internal/models"
	"gorm.io/gorm"
)

type WeeklyEntryRepository struct {
	database *gorm.DB
}

func NewWeeklyEntryRepository(database *gorm.DB) *WeeklyEntryRepository {
	return &WeeklyEntryRepository{database: database}
}

func (repo *WeeklyEntryRepository) FindByUserAndWeek(userID uint, weekStart string) (models.WeeklyEntry, bool, error) {
	entry := models.WeeklyEntry{}
	result := repo.database.
		Where("user_id = ? AND week_start = ?", userID, weekStart).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.WeeklyEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeeklyEntry{}, false, nil
	}
	return entry, true, nil
}

// Upsert writes a single row per (user, week): an existing row is updated in
// place, otherwise a new one is created.
func (repo *WeeklyEntryRepository) Upsert(entry *models.WeeklyEntry) error {
	existing, found, err := repo.FindByUserAndWeek(entry.UserID, entry.WeekStart)
	if err != nil {
		return err
	}
	if found {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
		return repo.database.Save(entry).Error
	}
	return repo.database.Create(entry).Error
}

func (repo *WeeklyEntryRepository) ListWeekKeys(userID uint) ([]string, error) {
	keys := make([]string, 0)
	if err := repo.database.Model(&models.WeeklyEntry{}).
		Where("user_id = ?", userID).
		Order("week_start DESC").
		Pluck("week_start", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

func (repo *WeeklyEntryRepository) FindByUserAndWeeks(userID uint, weekStarts []string) ([]models.WeeklyEntry, error) {
	entries := make([]models.WeeklyEntry, 0)
	if len(weekStarts) == 0 {
		return entries, nil
	}
	if err := repo.database.
		Where("user_id = ? AND week_start IN ?", userID, weekStarts).
		Order("week_start DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *WeeklyEntryRepository) DeleteByUser(userID uint) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.WeeklyEntry{}).Error
}
