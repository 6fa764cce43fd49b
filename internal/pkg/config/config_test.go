package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/Jayem09/coduxa-sub002/internal/pkg/models"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	v := viper.New()

	cfg := loadConfigFromEnv(v)

	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "credits.activity", cfg.NSQ.Topic)
	assert.Equal(t, "https://api.xendit.co", cfg.Xendit.BaseURL)
	assert.Equal(t, "IDR", cfg.Billing.Currency)
	assert.Equal(t, int64(6000), cfg.Billing.PricePerCredit)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("SERVER_PORT", 8080)
	v.Set("DB_HOST", "db.internal")
	v.Set("XENDIT_SECRET_KEY", "xnd_test_secret")
	v.Set("XENDIT_CALLBACK_TOKEN", "whsec_123")
	v.Set("BILLING_PRICE_PER_CREDIT", 5000)
	v.Set("REDIS_ENABLED", true)

	cfg := loadConfigFromEnv(v)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "xnd_test_secret", cfg.Xendit.SecretKey)
	assert.Equal(t, "whsec_123", cfg.Xendit.CallbackToken)
	assert.Equal(t, int64(5000), cfg.Billing.PricePerCredit)
	assert.True(t, cfg.Redis.Enabled)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       *models.Config
		expectErr string
	}{
		{
			name: "Complete Config",
			cfg: &models.Config{
				Database: models.DatabaseConfig{
					Host:     "localhost",
					Username: "postgres",
					Database: "credits",
				},
				Xendit: models.XenditConfig{
					SecretKey: "xnd_test_secret",
				},
			},
		},
		{
			name:      "Everything Missing",
			cfg:       &models.Config{},
			expectErr: "DB_HOST, DB_USERNAME, DB_DATABASE, XENDIT_SECRET_KEY",
		},
		{
			name: "Missing Gateway Secret",
			cfg: &models.Config{
				Database: models.DatabaseConfig{
					Host:     "localhost",
					Username: "postgres",
					Database: "credits",
				},
			},
			expectErr: "XENDIT_SECRET_KEY",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.cfg)

			if tc.expectErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
			}
		})
	}
}
