package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Jayem09/coduxa-sub002/internal/pkg/models"
)

// InitConfig loads configuration from the environment. In local environments
// a .env file at configPath is loaded first.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()

	if strings.EqualFold(v.GetString("APP_ENV"), "") || strings.EqualFold(v.GetString("APP_ENV"), "local") {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfigFromEnv(v)
}

func loadConfigFromEnv(v *viper.Viper) *models.Config {
	setDefaults(v)

	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")
	configs.Server.FrontendURL = v.GetString("FRONTEND_URL")

	// Database config
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Enabled = v.GetBool("REDIS_ENABLED")
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.Enabled = v.GetBool("NSQ_ENABLED")
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.Topic = v.GetString("NSQ_TOPIC")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Xendit config
	configs.Xendit.BaseURL = v.GetString("XENDIT_BASE_URL")
	configs.Xendit.SecretKey = v.GetString("XENDIT_SECRET_KEY")
	configs.Xendit.CallbackToken = v.GetString("XENDIT_CALLBACK_TOKEN")

	// Billing config
	configs.Billing.Currency = v.GetString("BILLING_CURRENCY")
	configs.Billing.PricePerCredit = v.GetInt64("BILLING_PRICE_PER_CREDIT")
	configs.Billing.InvoiceExpiry = v.GetInt("BILLING_INVOICE_EXPIRY")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("SERVER_PORT", 3001)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("NSQ_TOPIC", "credits.activity")
	v.SetDefault("XENDIT_BASE_URL", "https://api.xendit.co")
	v.SetDefault("BILLING_CURRENCY", "IDR")
	v.SetDefault("BILLING_PRICE_PER_CREDIT", 6000)
	v.SetDefault("BILLING_INVOICE_EXPIRY", 86400)
	v.SetDefault("LOG_LEVEL", "info")
}

// Validate checks that required settings are present. Missing required
// configuration aborts startup.
func Validate(cfg *models.Config) error {
	missing := []string{}

	if cfg.Database.Host == "" {
		missing = append(missing, "DB_HOST")
	}
	if cfg.Database.Username == "" {
		missing = append(missing, "DB_USERNAME")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "DB_DATABASE")
	}
	if cfg.Xendit.SecretKey == "" {
		missing = append(missing, "XENDIT_SECRET_KEY")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
