package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/ticktock/errors"
)

// StandardFlagParser registers flags with cobra and binds them to viper so that
// values resolve with the precedence flag > env > config > default.
//
// Usage:
//
//	parser := flags.NewStandardFlagParser(
//	    flags.WithBoolFlag("24h", "", false, "Use a 24-hour clock"),
//	)
//
//	// In command setup:
//	parser.RegisterFlags(cmd)
//	_ = parser.BindToViper(viper.GetViper())
type StandardFlagParser struct {
	registry    *FlagRegistry
	viperPrefix string
	flagSet     *pflag.FlagSet
}

// NewStandardFlagParser creates a parser from options.
func NewStandardFlagParser(opts ...Option) *StandardFlagParser {
	config := &parserConfig{registry: NewFlagRegistry()}
	for _, opt := range opts {
		opt(config)
	}
	return &StandardFlagParser{
		registry:    config.registry,
		viperPrefix: config.viperPrefix,
	}
}

// Registry exposes the registered flags.
func (p *StandardFlagParser) Registry() *FlagRegistry {
	return p.registry
}

// RegisterFlags adds the flags to the command's local flag set.
func (p *StandardFlagParser) RegisterFlags(cmd *cobra.Command) {
	p.register(cmd.Flags())
}

// RegisterPersistentFlags adds the flags to the command's persistent flag set.
func (p *StandardFlagParser) RegisterPersistentFlags(cmd *cobra.Command) {
	p.register(cmd.PersistentFlags())
}

func (p *StandardFlagParser) register(fs *pflag.FlagSet) {
	p.flagSet = fs
	for _, flag := range p.registry.All() {
		switch f := flag.(type) {
		case *StringFlag:
			fs.StringP(f.Name, f.Shorthand, f.Default, f.Description)
		case *BoolFlag:
			fs.BoolP(f.Name, f.Shorthand, f.Default, f.Description)
		case *IntFlag:
			fs.IntP(f.Name, f.Shorthand, f.Default, f.Description)
		}
	}
}

// ViperKey returns the configuration key a flag is bound to.
func (p *StandardFlagParser) ViperKey(flag Flag) string {
	if key := flag.GetViperKey(); key != "" {
		return key
	}
	key := strings.ReplaceAll(flag.GetName(), "-", "_")
	if p.viperPrefix != "" {
		return p.viperPrefix + "." + key
	}
	return key
}

// BindToViper binds every flag and its environment variables to v.
// RegisterFlags or RegisterPersistentFlags must be called first.
func (p *StandardFlagParser) BindToViper(v *viper.Viper) error {
	for _, flag := range p.registry.All() {
		key := p.ViperKey(flag)

		if envVars := flag.GetEnvVars(); len(envVars) > 0 {
			args := append([]string{key}, envVars...)
			if err := v.BindEnv(args...); err != nil {
				return fmt.Errorf("failed to bind env vars for flag %s: %w", flag.GetName(), err)
			}
		}

		if p.flagSet == nil {
			continue
		}
		if pf := p.flagSet.Lookup(flag.GetName()); pf != nil {
			if err := v.BindPFlag(key, pf); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", flag.GetName(), err)
			}
		}
	}
	return nil
}

// Validate checks string flags with valid values against the resolved configuration.
func (p *StandardFlagParser) Validate(v *viper.Viper) error {
	for _, flag := range p.registry.All() {
		f, ok := flag.(*StringFlag)
		if !ok || len(f.ValidValues) == 0 {
			continue
		}
		value := v.GetString(p.ViperKey(f))
		if value == "" {
			continue
		}
		if !contains(f.ValidValues, value) {
			return errUtils.Build(errUtils.ErrInvalidConfiguration).
				WithExplanationf("Invalid value %q for --%s.", value, f.Name).
				WithHintf("Valid values: %s", strings.Join(f.ValidValues, ", ")).
				WithContext("flag", f.Name).
				WithExitCode(errUtils.ExitCodeUsage).
				Err()
		}
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}
