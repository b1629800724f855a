package repository

import (
	"errors"
	"time"

	"go-inventory-pro/internal/model"
	"go-inventory-pro/prometheus"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	Load() (*model.Settings, error)
	Save(settings *model.Settings) error
}

type settingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) SettingsRepository {
	return &settingsRepo{db}
}

// Load reads the singleton settings row, seeding the defaults on first use.
func (r *settingsRepo) Load() (*model.Settings, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var settings model.Settings
	err := r.db.First(&settings, "id = ?", model.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := model.DefaultSettings()
		if err := r.db.Create(&defaults).Error; err != nil {
			return nil, err
		}
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save writes the whole record in a single-row UPDATE.
func (r *settingsRepo) Save(settings *model.Settings) error {
	defer prometheus.TrackDBOperation("update")(time.Now())
	settings.ID = model.SettingsID
	return r.db.Save(settings).Error
}
