package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Log      LogConfig
	Balance  BalanceConfig
	Jobs     JobsConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// BalanceConfig exposes the schedule-analysis thresholds. The cutoffs ship
// with fixed defaults but stay tunable per deployment.
type BalanceConfig struct {
	OverloadThresholdHours float64
	OverloadHighHours      float64
	OverloadCriticalHours  float64
	MinSlotMinutes         int
	RestSeverePercent      float64
	RestLowPercent         float64
	RestShortPercent       float64
	RestIdealMax           float64
	WakingHoursPerDay      float64
}

// JobsConfig tunes the job-board listing cache.
type JobsConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
		Issuer:     v.GetString("JWT_ISSUER"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Balance = BalanceConfig{
		OverloadThresholdHours: v.GetFloat64("BALANCE_OVERLOAD_THRESHOLD_HOURS"),
		OverloadHighHours:      v.GetFloat64("BALANCE_OVERLOAD_HIGH_HOURS"),
		OverloadCriticalHours:  v.GetFloat64("BALANCE_OVERLOAD_CRITICAL_HOURS"),
		MinSlotMinutes:         v.GetInt("BALANCE_MIN_SLOT_MINUTES"),
		RestSeverePercent:      v.GetFloat64("BALANCE_REST_SEVERE_PERCENT"),
		RestLowPercent:         v.GetFloat64("BALANCE_REST_LOW_PERCENT"),
		RestShortPercent:       v.GetFloat64("BALANCE_REST_SHORT_PERCENT"),
		RestIdealMax:           v.GetFloat64("BALANCE_REST_IDEAL_MAX_PERCENT"),
		WakingHoursPerDay:      v.GetFloat64("BALANCE_WAKING_HOURS_PER_DAY"),
	}

	cfg.Jobs = JobsConfig{
		CacheEnabled: v.GetBool("JOBS_CACHE_ENABLED"),
		CacheTTL:     parseDuration(v.GetString("JOBS_CACHE_TTL"), 5*time.Minute),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "student_jobs")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("JWT_ISSUER", "student-jobs-api")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("BALANCE_OVERLOAD_THRESHOLD_HOURS", 10)
	v.SetDefault("BALANCE_OVERLOAD_HIGH_HOURS", 12)
	v.SetDefault("BALANCE_OVERLOAD_CRITICAL_HOURS", 14)
	v.SetDefault("BALANCE_MIN_SLOT_MINUTES", 30)
	v.SetDefault("BALANCE_REST_SEVERE_PERCENT", 20)
	v.SetDefault("BALANCE_REST_LOW_PERCENT", 30)
	v.SetDefault("BALANCE_REST_SHORT_PERCENT", 35)
	v.SetDefault("BALANCE_REST_IDEAL_MAX_PERCENT", 45)
	v.SetDefault("BALANCE_WAKING_HOURS_PER_DAY", 16)

	v.SetDefault("JOBS_CACHE_ENABLED", false)
	v.SetDefault("JOBS_CACHE_TTL", "5m")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
