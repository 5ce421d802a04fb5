package config

// EnvPrefix is empty because every variable carries the explicit FABRIC_ prefix.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "FABRIC_APP_ENV"
	EnvPort     = "FABRIC_APP_PORT"
	EnvLogLevel = "FABRIC_LOG_LEVEL"

	EnvDBDSN  = "FABRIC_DB_DSN"
	EnvDBHost = "FABRIC_DB_HOST"
	EnvDBUser = "FABRIC_DB_USER"
	EnvDBName = "FABRIC_DB_NAME"

	EnvRedisURL = "FABRIC_REDIS_URL"

	EnvEnableLegacyCheckout = "FABRIC_ENABLE_LEGACY_CHECKOUT"

	EnvMedusaBackendURL     = "FABRIC_MEDUSA_BACKEND_URL"
	EnvMedusaPublishableKey = "FABRIC_MEDUSA_PUBLISHABLE_KEY"
	EnvMedusaRegionID       = "FABRIC_MEDUSA_REGION_ID"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
