package flags

// Option is a functional option for configuring a StandardFlagParser.
//
// Usage:
//
//	parser := flags.NewStandardFlagParser(
//	    flags.WithBoolFlag("24h", "", false, "Use a 24-hour clock"),
//	    flags.WithViperKey("24h", "clock.format_24h"),
//	    flags.WithEnvVars("24h", "TICKTOCK_CLOCK_24H"),
//	)
type Option func(*parserConfig)

type parserConfig struct {
	registry    *FlagRegistry
	viperPrefix string
}

// WithStringFlag adds a string flag.
func WithStringFlag(name, shorthand, defaultValue, description string) Option {
	return func(cfg *parserConfig) {
		cfg.registry.Register(&StringFlag{
			Name:        name,
			Shorthand:   shorthand,
			Default:     defaultValue,
			Description: description,
		})
	}
}

// WithBoolFlag adds a boolean flag.
func WithBoolFlag(name, shorthand string, defaultValue bool, description string) Option {
	return func(cfg *parserConfig) {
		cfg.registry.Register(&BoolFlag{
			Name:        name,
			Shorthand:   shorthand,
			Default:     defaultValue,
			Description: description,
		})
	}
}

// WithIntFlag adds an integer flag.
func WithIntFlag(name, shorthand string, defaultValue int, description string) Option {
	return func(cfg *parserConfig) {
		cfg.registry.Register(&IntFlag{
			Name:        name,
			Shorthand:   shorthand,
			Default:     defaultValue,
			Description: description,
		})
	}
}

// WithEnvVars binds environment variables to an already-registered flag.
// Earlier variables take precedence.
//
// Usage:
//
//	WithEnvVars("logs-level", "TICKTOCK_LOGS_LEVEL")
func WithEnvVars(flagName string, envVars ...string) Option {
	return func(cfg *parserConfig) {
		switch f := cfg.registry.Get(flagName).(type) {
		case *StringFlag:
			f.EnvVars = envVars
		case *BoolFlag:
			f.EnvVars = envVars
		case *IntFlag:
			f.EnvVars = envVars
		}
	}
}

// WithViperKey maps a flag onto a configuration key so the flag overrides
// the value from ticktock.yaml.
func WithViperKey(flagName, key string) Option {
	return func(cfg *parserConfig) {
		switch f := cfg.registry.Get(flagName).(type) {
		case *StringFlag:
			f.ViperKey = key
		case *BoolFlag:
			f.ViperKey = key
		case *IntFlag:
			f.ViperKey = key
		}
	}
}

// WithValidValues restricts a string flag to the given values.
//
// Usage:
//
//	WithValidValues("lap-order", "newest-first", "newest-last")
func WithValidValues(flagName string, validValues ...string) Option {
	return func(cfg *parserConfig) {
		if f, ok := cfg.registry.Get(flagName).(*StringFlag); ok {
			f.ValidValues = validValues
		}
	}
}

// WithViperPrefix namespaces flags without an explicit viper key.
func WithViperPrefix(prefix string) Option {
	return func(cfg *parserConfig) {
		cfg.viperPrefix = prefix
	}
}
