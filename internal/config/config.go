package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Redis              Redis              `mapstructure:",squash"`
	Fortnox            Fortnox            `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	Health             Health             `mapstructure:",squash"`
	Invoicing          Invoicing          `mapstructure:",squash"`
	MonthlyRevenueSync MonthlyRevenueSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN            string `mapstructure:"-"`
	Driver         string `mapstructure:"database_driver"`
	Password       string `mapstructure:"database_password"`
	URL            string `mapstructure:"database_url"`
	User           string `mapstructure:"database_user"`
	MigrateOnStart bool   `mapstructure:"database_migrate_on_start"`
}

type Redis struct {
	URL string `mapstructure:"redis_url"`
}

type Fortnox struct {
	BaseURL        string        `mapstructure:"fortnox_base_url"`
	TimeoutSeconds int           `mapstructure:"fortnox_timeout_seconds"`
	ExportLockTTL  time.Duration `mapstructure:"fortnox_export_lock_ttl"`
}

type Auth struct {
	SecretKey string        `mapstructure:"secret_key"`
	TokenTTL  time.Duration `mapstructure:"auth_token_ttl"`
}

// Health parametriza a classificação de saúde dos clientes
type Health struct {
	ActiveDays       int     `mapstructure:"health_active_days"`
	AtRiskDays       int     `mapstructure:"health_at_risk_days"`
	ActiveBase       float64 `mapstructure:"health_active_base"`
	ActiveDecay      float64 `mapstructure:"health_active_decay"`
	ActiveMaxPenalty float64 `mapstructure:"health_active_max_penalty"`
	AtRiskBase       float64 `mapstructure:"health_at_risk_base"`
	AtRiskDecay      float64 `mapstructure:"health_at_risk_decay"`
	AtRiskMaxPenalty float64 `mapstructure:"health_at_risk_max_penalty"`
	InactiveBase     float64 `mapstructure:"health_inactive_base"`
	InactiveDecay    float64 `mapstructure:"health_inactive_decay"`
	MaxRows          int     `mapstructure:"health_max_rows"`
}

type Invoicing struct {
	DefaultVATPercent       int `mapstructure:"default_vat_percent"`
	DefaultPaymentTermsDays int `mapstructure:"default_payment_terms_days"`
}

type MonthlyRevenueSync struct {
	CronSchedule      string `mapstructure:"monthly_revenue_sync_cron"`
	Enabled           bool   `mapstructure:"monthly_revenue_sync_enabled"`
	MaxConcurrentJobs int    `mapstructure:"monthly_revenue_sync_max_concurrent_jobs"`
	MonthLookBack     int    `mapstructure:"monthly_revenue_sync_month_look_back"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/consultant?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATE_ON_START", true)

	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")

	viper.SetDefault("FORTNOX_BASE_URL", "https://api.fortnox.se/3")
	viper.SetDefault("FORTNOX_TIMEOUT_SECONDS", 30)
	viper.SetDefault("FORTNOX_EXPORT_LOCK_TTL", "2m")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("HEALTH_ACTIVE_DAYS", 30)
	viper.SetDefault("HEALTH_AT_RISK_DAYS", 90)
	viper.SetDefault("HEALTH_ACTIVE_BASE", 90)
	viper.SetDefault("HEALTH_ACTIVE_DECAY", 2)
	viper.SetDefault("HEALTH_ACTIVE_MAX_PENALTY", 40)
	viper.SetDefault("HEALTH_AT_RISK_BASE", 50)
	viper.SetDefault("HEALTH_AT_RISK_DECAY", 0.5)
	viper.SetDefault("HEALTH_AT_RISK_MAX_PENALTY", 25)
	viper.SetDefault("HEALTH_INACTIVE_BASE", 25)
	viper.SetDefault("HEALTH_INACTIVE_DECAY", 0.1)
	viper.SetDefault("HEALTH_MAX_ROWS", 15)

	viper.SetDefault("DEFAULT_VAT_PERCENT", 25)
	viper.SetDefault("DEFAULT_PAYMENT_TERMS_DAYS", 30)

	viper.SetDefault("MONTHLY_REVENUE_SYNC_CRON", "0 5 1 * *") // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("MONTHLY_REVENUE_SYNC_ENABLED", false)
	viper.SetDefault("MONTHLY_REVENUE_SYNC_MAX_CONCURRENT_JOBS", 4)
	viper.SetDefault("MONTHLY_REVENUE_SYNC_MONTH_LOOK_BACK", 1)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("erro ao ler configuração: %w", err)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// FortnoxTimeout converte o timeout configurado, 30s quando não informado
func (c *Config) FortnoxTimeout() time.Duration {
	if c.Fortnox.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Fortnox.TimeoutSeconds) * time.Second
}

// loadEnvFile procura um .env no diretório atual e nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
