package db

import (
	"github.com/marisolvale/weekling/internal/models"
	"gorm.io/gorm"
)

type PreferenceRepository struct {
	database *gorm.DB
}

func NewPreferenceRepository(database *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{database: database}
}

func (repo *PreferenceRepository) Get(userID uint, name string) (string, bool, error) {
	pref := models.Preference{}
	result := repo.database.
		Where("user_id = ? AND name = ?", userID, name).
		Limit(1).
		Find(&pref)
	if result.Error != nil {
		return "", false, result.Error
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return pref.Value, true, nil
}

func (repo *PreferenceRepository) Set(userID uint, name string, value string) error {
	existing := models.Preference{}
	result := repo.database.
		Where("user_id = ? AND name = ?", userID, name).
		Limit(1).
		Find(&existing)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		existing.Value = value
		return repo.database.Save(&existing).Error
	}
	return repo.database.Create(&models.Preference{
		UserID: userID,
		Name:   name,
		Value:  value,
	}).Error
}
