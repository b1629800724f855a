package model

import "time"

// SettingsID is the primary key of the single settings row. Settings are
// an explicit config record with a load/save lifecycle, not process-global
// mutable state.
const SettingsID = 1

type Settings struct {
	ID uint `gorm:"primaryKey" json:"-"`

	// General
	CompanyName    string `gorm:"type:varchar(255)" json:"companyName"`
	CompanyEmail   string `gorm:"type:varchar(255)" json:"companyEmail"`
	CompanyPhone   string `gorm:"type:varchar(50)" json:"companyPhone"`
	CompanyAddress string `gorm:"type:text" json:"companyAddress"`

	// Notifications
	LowStockAlerts     bool `json:"lowStockAlerts"`
	OutOfStockAlerts   bool `json:"outOfStockAlerts"`
	EmailNotifications bool `json:"emailNotifications"`
	PushNotifications  bool `json:"pushNotifications"`
	LowStockThreshold  int  `json:"lowStockThreshold"`

	// System
	Currency   string `gorm:"type:varchar(10)" json:"currency"`
	DateFormat string `gorm:"type:varchar(20)" json:"dateFormat"`
	Timezone   string `gorm:"type:varchar(64)" json:"timezone"`
	Language   string `gorm:"type:varchar(10)" json:"language"`

	// Security
	SessionTimeout        int  `json:"sessionTimeout"`
	RequirePasswordChange bool `json:"requirePasswordChange"`
	TwoFactorAuth         bool `json:"twoFactorAuth"`

	// Display
	Theme             string `gorm:"type:varchar(10)" json:"theme"`
	ItemsPerPage      int    `json:"itemsPerPage"`
	ShowProductImages bool   `json:"showProductImages"`
	CompactView       bool   `json:"compactView"`

	Version   string    `gorm:"type:varchar(10)" json:"version"`
	UpdatedAt time.Time `json:"lastUpdated"`
}

// DefaultSettings returns the factory configuration used on first boot and
// on reset.
func DefaultSettings() Settings {
	return Settings{
		ID:                    SettingsID,
		CompanyName:           "Inventory Pro",
		CompanyEmail:          "admin@company.com",
		CompanyPhone:          "+1 (555) 123-4567",
		CompanyAddress:        "123 Business St, City, State 12345",
		LowStockAlerts:        true,
		OutOfStockAlerts:      true,
		EmailNotifications:    true,
		PushNotifications:     false,
		LowStockThreshold:     10,
		Currency:              "USD",
		DateFormat:            "MM/DD/YYYY",
		Timezone:              "America/New_York",
		Language:              "en",
		SessionTimeout:        30,
		RequirePasswordChange: false,
		TwoFactorAuth:         false,
		Theme:                 "system",
		ItemsPerPage:          10,
		ShowProductImages:     true,
		CompactView:           false,
		Version:               "1.0",
	}
}
