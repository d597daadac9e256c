package config

// Environment variable names
const (
	EnvItemsPath      = "ITEMS_PATH"
	EnvContainersPath = "CONTAINERS_PATH"
	EnvScenarioPath   = "SCENARIO_PATH"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvLogDir         = "LOG_DIR"
	EnvEnvironment    = "ENVIRONMENT"
	EnvServiceName    = "SERVICE_NAME"
	EnvVersion        = "VERSION"
	EnvPort           = "PORT"
)

// Defaults
const (
	DefaultItemsPath      = "items.csv"
	DefaultContainersPath = "containers.csv"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultServiceName    = "loot-containers"
	DefaultVersion        = "dev"
)

const MaxPort = 65535
