package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsSeededWithDefaults(t *testing.T) {
	env := newTestEnv(t)

	settings, err := env.settings.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "Inventory Pro", settings.CompanyName)
	assert.Equal(t, "USD", settings.Currency)
	assert.Equal(t, 10, settings.LowStockThreshold)
	assert.True(t, settings.LowStockAlerts)
}

func TestUpdateSettingsValidatesPerField(t *testing.T) {
	env := newTestEnv(t)

	settings, applied, err := env.settings.UpdateSettings(map[string]interface{}{
		"companyName":       "Warehouse Inc",
		"currency":          "EUR",
		"theme":             "dark",
		"sessionTimeout":    float64(45), // JSON numbers decode as float64
		"lowStockThreshold": float64(25),
		"itemsPerPage":      float64(50),
		"lowStockAlerts":    false,
	})
	require.NoError(t, err)
	assert.Len(t, applied, 7)
	assert.Equal(t, "Warehouse Inc", settings.CompanyName)
	assert.Equal(t, "EUR", settings.Currency)
	assert.Equal(t, "dark", settings.Theme)
	assert.Equal(t, 45, settings.SessionTimeout)
	assert.Equal(t, 25, settings.LowStockThreshold)
	assert.Equal(t, 50, settings.ItemsPerPage)
	assert.False(t, settings.LowStockAlerts)

	// Changes survive a reload.
	reloaded, err := env.settings.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "Warehouse Inc", reloaded.CompanyName)
	assert.Equal(t, "EUR", reloaded.Currency)
}

func TestUpdateSettingsClampsRanges(t *testing.T) {
	env := newTestEnv(t)

	settings, _, err := env.settings.UpdateSettings(map[string]interface{}{
		"sessionTimeout":    float64(99999),
		"lowStockThreshold": float64(-5),
	})
	require.NoError(t, err)
	assert.Equal(t, 480, settings.SessionTimeout)
	assert.Equal(t, 0, settings.LowStockThreshold)

	settings, _, err = env.settings.UpdateSettings(map[string]interface{}{
		"sessionTimeout": float64(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, settings.SessionTimeout)
}

func TestUpdateSettingsRejectsUnknownEnumValues(t *testing.T) {
	env := newTestEnv(t)

	settings, _, err := env.settings.UpdateSettings(map[string]interface{}{
		"currency":     "DOGE",
		"theme":        "hotdog",
		"dateFormat":   "YYYY/DD/MM",
		"language":     "xx",
		"itemsPerPage": float64(7),
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", settings.Currency)
	assert.Equal(t, "system", settings.Theme)
	assert.Equal(t, "MM/DD/YYYY", settings.DateFormat)
	assert.Equal(t, "en", settings.Language)
	assert.Equal(t, 10, settings.ItemsPerPage)
}

func TestUpdateSettingsIgnoresUnknownKeys(t *testing.T) {
	env := newTestEnv(t)

	_, applied, err := env.settings.UpdateSettings(map[string]interface{}{
		"companyName": "Warehouse Inc",
		"hackerField": "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"companyName"}, applied)
}

func TestResetSettings(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.settings.UpdateSettings(map[string]interface{}{
		"companyName": "Warehouse Inc",
		"currency":    "EUR",
	})
	require.NoError(t, err)

	settings, err := env.settings.ResetSettings()
	require.NoError(t, err)
	assert.Equal(t, "Inventory Pro", settings.CompanyName)
	assert.Equal(t, "USD", settings.Currency)

	reloaded, err := env.settings.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "Inventory Pro", reloaded.CompanyName)
}
