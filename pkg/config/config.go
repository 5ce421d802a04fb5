package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	FeatureFlags FeatureFlagsConfig
	Medusa       MedusaConfig
	Catalog      CatalogConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FABRIC_APP_ENV" required:"true"`
	Port         string `envconfig:"FABRIC_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"FABRIC_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FABRIC_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"FABRIC_DB_DSN"`
	Driver string `envconfig:"FABRIC_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"FABRIC_DB_HOST"`
	LegacyPort     int    `envconfig:"FABRIC_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"FABRIC_DB_USER"`
	LegacyPassword string `envconfig:"FABRIC_DB_PASSWORD"`
	LegacyName     string `envconfig:"FABRIC_DB_NAME"`
	LegacySSLMode  string `envconfig:"FABRIC_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"FABRIC_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FABRIC_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FABRIC_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FABRIC_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"FABRIC_REDIS_URL" required:"true"`
	Address      string        `envconfig:"FABRIC_REDIS_ADDR"`
	Password     string        `envconfig:"FABRIC_REDIS_PASSWORD"`
	DB           int           `envconfig:"FABRIC_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FABRIC_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FABRIC_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FABRIC_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FABRIC_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FABRIC_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type FeatureFlagsConfig struct {
	// EnableLegacyCheckout gates both Medusa order-creation paths. Read once
	// at startup, enabled by default for backward compatibility.
	EnableLegacyCheckout bool `envconfig:"FABRIC_ENABLE_LEGACY_CHECKOUT" default:"true"`
	UseSQLite            bool `envconfig:"FABRIC_USE_SQLITE" default:"false"`
	AutoMigrate          bool `envconfig:"FABRIC_AUTO_MIGRATE" default:"false"`
}

type MedusaConfig struct {
	BackendURL     string `envconfig:"FABRIC_MEDUSA_BACKEND_URL" required:"true"`
	PublishableKey string `envconfig:"FABRIC_MEDUSA_PUBLISHABLE_KEY"`
	RegionID       string `envconfig:"FABRIC_MEDUSA_REGION_ID"`
	Currency       string `envconfig:"FABRIC_MEDUSA_CURRENCY" default:"usd"`
	// HTTPTimeout of zero keeps the historical behavior of waiting on the
	// backend indefinitely. Operators opt into timeouts explicitly.
	HTTPTimeout time.Duration `envconfig:"FABRIC_MEDUSA_HTTP_TIMEOUT" default:"0"`
}

type CatalogConfig struct {
	SearchDebounce time.Duration `envconfig:"FABRIC_CATALOG_SEARCH_DEBOUNCE" default:"700ms"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
