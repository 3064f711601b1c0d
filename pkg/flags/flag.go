package flags

// Flag is the common view of a registered command-line flag.
type Flag interface {
	GetName() string
	GetShorthand() string
	GetDescription() string
	GetDefault() interface{}
	GetEnvVars() []string
	// GetViperKey returns the configuration key the flag overrides, if any.
	GetViperKey() string
}

// StringFlag is a string-valued flag, optionally restricted to ValidValues.
type StringFlag struct {
	Name        string
	Shorthand   string
	Default     string
	Description string
	EnvVars     []string
	ViperKey    string
	ValidValues []string
}

func (f *StringFlag) GetName() string         { return f.Name }
func (f *StringFlag) GetShorthand() string    { return f.Shorthand }
func (f *StringFlag) GetDescription() string  { return f.Description }
func (f *StringFlag) GetDefault() interface{} { return f.Default }
func (f *StringFlag) GetEnvVars() []string    { return f.EnvVars }
func (f *StringFlag) GetViperKey() string     { return f.ViperKey }

// BoolFlag is a boolean flag.
type BoolFlag struct {
	Name        string
	Shorthand   string
	Default     bool
	Description string
	EnvVars     []string
	ViperKey    string
}

func (f *BoolFlag) GetName() string         { return f.Name }
func (f *BoolFlag) GetShorthand() string    { return f.Shorthand }
func (f *BoolFlag) GetDescription() string  { return f.Description }
func (f *BoolFlag) GetDefault() interface{} { return f.Default }
func (f *BoolFlag) GetEnvVars() []string    { return f.EnvVars }
func (f *BoolFlag) GetViperKey() string     { return f.ViperKey }

// IntFlag is an integer flag.
type IntFlag struct {
	Name        string
	Shorthand   string
	Default     int
	Description string
	EnvVars     []string
	ViperKey    string
}

func (f *IntFlag) GetName() string         { return f.Name }
func (f *IntFlag) GetShorthand() string    { return f.Shorthand }
func (f *IntFlag) GetDescription() string  { return f.Description }
func (f *IntFlag) GetDefault() interface{} { return f.Default }
func (f *IntFlag) GetEnvVars() []string    { return f.EnvVars }
func (f *IntFlag) GetViperKey() string     { return f.ViperKey }

// FlagRegistry keeps flags in registration order.
type FlagRegistry struct {
	flags []Flag
	index map[string]int
}

// NewFlagRegistry creates an empty registry.
func NewFlagRegistry() *FlagRegistry {
	return &FlagRegistry{index: make(map[string]int)}
}

// Register adds a flag, replacing an earlier flag of the same name.
func (r *FlagRegistry) Register(f Flag) {
	if i, ok := r.index[f.GetName()]; ok {
		r.flags[i] = f
		return
	}
	r.index[f.GetName()] = len(r.flags)
	r.flags = append(r.flags, f)
}

// Get returns the named flag or nil.
func (r *FlagRegistry) Get(name string) Flag {
	if i, ok := r.index[name]; ok {
		return r.flags[i]
	}
	return nil
}

// Has reports whether a flag is registered.
func (r *FlagRegistry) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// All returns the flags in registration order.
func (r *FlagRegistry) All() []Flag {
	return r.flags
}
