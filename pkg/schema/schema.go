package schema

// Configuration is the full ticktock configuration loaded from ticktock.yaml,
// TICKTOCK_* environment variables and command-line flags.
type Configuration struct {
	Logs      Logs            `yaml:"logs" json:"logs" mapstructure:"logs"`
	Settings  Settings        `yaml:"settings" json:"settings" mapstructure:"settings"`
	Clock     ClockConfig     `yaml:"clock" json:"clock" mapstructure:"clock"`
	Stopwatch StopwatchConfig `yaml:"stopwatch" json:"stopwatch" mapstructure:"stopwatch"`
	Timer     TimerConfig     `yaml:"timer" json:"timer" mapstructure:"timer"`
	Store     StoreConfig     `yaml:"store" json:"store" mapstructure:"store"`
	Errors    ErrorsConfig    `yaml:"errors" json:"errors" mapstructure:"errors"`

	// ConfigFile is the path of the configuration file that was read, if any.
	ConfigFile string `yaml:"-" json:"-" mapstructure:"-"`
}

type Logs struct {
	File  string `yaml:"file" json:"file" mapstructure:"file"`
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}

type Settings struct {
	Terminal Terminal `yaml:"terminal" json:"terminal" mapstructure:"terminal"`
}

// Terminal holds terminal presentation settings.
// Theme names a palette; Mode ("light" or "dark") overrides the persisted preference when set.
type Terminal struct {
	Theme   string `yaml:"theme" json:"theme" mapstructure:"theme"`
	Mode    string `yaml:"mode" json:"mode" mapstructure:"mode"`
	NoColor bool   `yaml:"no_color" json:"no_color" mapstructure:"no_color"`
	Mouse   bool   `yaml:"mouse" json:"mouse" mapstructure:"mouse"`
}

type ClockConfig struct {
	Format24h bool `yaml:"format_24h" json:"format_24h" mapstructure:"format_24h"`
	Analog    bool `yaml:"analog" json:"analog" mapstructure:"analog"`
	Sound     bool `yaml:"sound" json:"sound" mapstructure:"sound"`
}

type StopwatchConfig struct {
	TickMs   int    `yaml:"tick_ms" json:"tick_ms" mapstructure:"tick_ms"`
	LapOrder string `yaml:"lap_order" json:"lap_order" mapstructure:"lap_order"`
}

type TimerConfig struct {
	TickMs      int    `yaml:"tick_ms" json:"tick_ms" mapstructure:"tick_ms"`
	ResetPolicy string `yaml:"reset_policy" json:"reset_policy" mapstructure:"reset_policy"`
	Hours       int    `yaml:"hours" json:"hours" mapstructure:"hours"`
	Minutes     int    `yaml:"minutes" json:"minutes" mapstructure:"minutes"`
	Seconds     int    `yaml:"seconds" json:"seconds" mapstructure:"seconds"`
	Sound       bool   `yaml:"sound" json:"sound" mapstructure:"sound"`
	SandStyle   string `yaml:"sand_style" json:"sand_style" mapstructure:"sand_style"`
}

// StoreConfig selects the persistence backend for user preferences.
type StoreConfig struct {
	Type    string                 `yaml:"type" json:"type" mapstructure:"type"`
	Options map[string]interface{} `yaml:"options" json:"options" mapstructure:"options"`
}

type ErrorsConfig struct {
	Format ErrorFormatConfig `yaml:"format" json:"format" mapstructure:"format"`
	Sentry SentryConfig      `yaml:"sentry" json:"sentry" mapstructure:"sentry"`
}

type ErrorFormatConfig struct {
	Verbose bool   `yaml:"verbose" json:"verbose" mapstructure:"verbose"`
	Color   string `yaml:"color" json:"color" mapstructure:"color"`
}

type SentryConfig struct {
	Enabled     bool              `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	DSN         string            `yaml:"dsn" json:"dsn" mapstructure:"dsn"`
	Environment string            `yaml:"environment" json:"environment" mapstructure:"environment"`
	Release     string            `yaml:"release" json:"release" mapstructure:"release"`
	SampleRate  float64           `yaml:"sample_rate" json:"sample_rate" mapstructure:"sample_rate"`
	Debug       bool              `yaml:"debug" json:"debug" mapstructure:"debug"`
	Tags        map[string]string `yaml:"tags" json:"tags" mapstructure:"tags"`
}
