package config

const (
	// ConfigFileName is the base name searched for in each config directory.
	ConfigFileName = "ticktock"
	// ConfigFileType is the only supported configuration format.
	ConfigFileType = "yaml"

	// EnvPrefix namespaces every environment variable ticktock reads.
	EnvPrefix = "TICKTOCK"
	// ConfigPathEnv points at an explicit configuration file.
	ConfigPathEnv = "TICKTOCK_CONFIG"

	DefaultTickMs        = 10
	DefaultTimerTickMs   = 1000
	DefaultLapOrder      = "newest-first"
	DefaultResetPolicy   = "preserve-config"
	DefaultLogLevel      = "Warning"
	DefaultStoreType     = "file"
	DefaultSandStyle     = "classic"
	DefaultSentrySample  = 1.0
	DefaultTimerMinutes  = 5
	configDirPermissions = 0o755
)
