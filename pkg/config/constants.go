package config

// EnvPrefix scopes every environment variable read by Load.
const EnvPrefix = "THREADLINE"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "THREADLINE_APP_ENV"
	EnvPort     = "THREADLINE_APP_PORT"
	EnvLogLevel = "THREADLINE_LOG_LEVEL"
	EnvDBPath   = "THREADLINE_DB_PATH"
)
