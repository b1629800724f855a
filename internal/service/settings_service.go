package service

import (
	"go-inventory-pro/internal/model"
	"go-inventory-pro/internal/repository"
)

// Allow-lists for enumerated settings fields. Values outside a list fall
// back to the current default rather than failing the whole update.
var (
	allowedCurrencies  = []string{"USD", "EUR", "GBP", "CAD", "JPY", "AUD"}
	allowedDateFormats = []string{"MM/DD/YYYY", "DD/MM/YYYY", "YYYY-MM-DD"}
	allowedLanguages   = []string{"en", "es", "fr", "de", "it", "pt"}
	allowedThemes      = []string{"light", "dark", "system"}
	allowedPageSizes   = []int{5, 10, 25, 50, 100}
)

type SettingsService interface {
	GetSettings() (*model.Settings, error)
	UpdateSettings(updates map[string]interface{}) (*model.Settings, []string, error)
	ResetSettings() (*model.Settings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: repo}
}

func (s *settingsService) GetSettings() (*model.Settings, error) {
	settings, err := s.settingsRepo.Load()
	if err != nil {
		return nil, storageErr(err)
	}
	return settings, nil
}

// UpdateSettings loads the config record, applies only recognized fields
// validated against their allow-lists or clamped into range, and writes
// the record back atomically. Unknown keys are ignored. The names of the
// fields actually applied are returned for the caller.
func (s *settingsService) UpdateSettings(updates map[string]interface{}) (*model.Settings, []string, error) {
	settings, err := s.settingsRepo.Load()
	if err != nil {
		return nil, nil, storageErr(err)
	}

	applied := []string{}
	for key, value := range updates {
		if applySetting(settings, key, value) {
			applied = append(applied, key)
		}
	}

	if err := s.settingsRepo.Save(settings); err != nil {
		return nil, nil, storageErr(err)
	}
	return settings, applied, nil
}

func (s *settingsService) ResetSettings() (*model.Settings, error) {
	defaults := model.DefaultSettings()
	if err := s.settingsRepo.Save(&defaults); err != nil {
		return nil, storageErr(err)
	}
	return &defaults, nil
}

func applySetting(settings *model.Settings, key string, value interface{}) bool {
	switch key {
	case "companyName":
		return applyString(&settings.CompanyName, value)
	case "companyEmail":
		return applyString(&settings.CompanyEmail, value)
	case "companyPhone":
		return applyString(&settings.CompanyPhone, value)
	case "companyAddress":
		return applyString(&settings.CompanyAddress, value)
	case "lowStockAlerts":
		return applyBool(&settings.LowStockAlerts, value)
	case "outOfStockAlerts":
		return applyBool(&settings.OutOfStockAlerts, value)
	case "emailNotifications":
		return applyBool(&settings.EmailNotifications, value)
	case "pushNotifications":
		return applyBool(&settings.PushNotifications, value)
	case "lowStockThreshold":
		n, ok := toInt(value)
		if !ok {
			n = 10
		}
		settings.LowStockThreshold = clamp(n, 0, 1000)
		return true
	case "sessionTimeout":
		n, ok := toInt(value)
		if !ok {
			n = 30
		}
		settings.SessionTimeout = clamp(n, 5, 480)
		return true
	case "itemsPerPage":
		n, _ := toInt(value)
		settings.ItemsPerPage = pickInt(n, allowedPageSizes, 10)
		return true
	case "currency":
		settings.Currency = pickString(value, allowedCurrencies, "USD")
		return true
	case "dateFormat":
		settings.DateFormat = pickString(value, allowedDateFormats, "MM/DD/YYYY")
		return true
	case "timezone":
		if s, ok := value.(string); ok && s != "" {
			settings.Timezone = s
		} else {
			settings.Timezone = "America/New_York"
		}
		return true
	case "language":
		settings.Language = pickString(value, allowedLanguages, "en")
		return true
	case "theme":
		settings.Theme = pickString(value, allowedThemes, "system")
		return true
	case "requirePasswordChange":
		return applyBool(&settings.RequirePasswordChange, value)
	case "twoFactorAuth":
		return applyBool(&settings.TwoFactorAuth, value)
	case "showProductImages":
		return applyBool(&settings.ShowProductImages, value)
	case "compactView":
		return applyBool(&settings.CompactView, value)
	}
	return false
}

func applyString(dst *string, value interface{}) bool {
	if s, ok := value.(string); ok {
		*dst = s
		return true
	}
	return false
}

func applyBool(dst *bool, value interface{}) bool {
	if b, ok := value.(bool); ok {
		*dst = b
		return true
	}
	return false
}

// toInt accepts the numeric shapes a JSON body can produce.
func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func pickInt(n int, allowed []int, def int) int {
	for _, a := range allowed {
		if n == a {
			return n
		}
	}
	return def
}

func pickString(value interface{}, allowed []string, def string) string {
	s, ok := value.(string)
	if !ok {
		return def
	}
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	return def
}
