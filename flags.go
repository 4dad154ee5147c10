package docgen

import (
	"github.com/flanksource/commons/logger"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Version is set at build time.
var Version = "dev"

type AllFlags struct {
	// ConfigFile is an optional YAML file overlaid on the environment.
	ConfigFile string
	// Overrides holds the values of explicitly set config flags.
	Overrides Config
	logger.Flags
}

var Flags AllFlags = AllFlags{
	Flags: logger.Flags{
		Level:        "info",
		LevelCount:   0,
		JsonLogs:     false,
		ReportCaller: false,
		LogToStderr:  true,
	},
}

type stringFlag struct {
	name, usage string
	field       func(*Config) *string
}

type intFlag struct {
	name, usage string
	field       func(*Config) *int
}

var stringFlags = []stringFlag{
	{"assets-dir", "Directory holding backgrounds/ (env DOCGEN_ASSETS_DIR)", func(c *Config) *string { return &c.AssetsDir }},
	{"uploads-dir", "Directory of uploaded images (env DOCGEN_UPLOADS_DIR)", func(c *Config) *string { return &c.UploadsDir }},
	{"data-dir", "Directory of quote sheets named <sheet-id>.yaml (env DOCGEN_DATA_DIR)", func(c *Config) *string { return &c.DataDir }},
	{"logo", "Brand logo file (env DOCGEN_LOGO_PATH)", func(c *Config) *string { return &c.LogoPath }},
	{"brand-name", "Company name printed on quotes (env DOCGEN_BRAND_NAME)", func(c *Config) *string { return &c.BrandName }},
	{"brand-handle", "Handle appended to quote file names (env DOCGEN_BRAND_HANDLE)", func(c *Config) *string { return &c.BrandHandle }},
	{"website", "Footer URL of project descriptions (env DOCGEN_WEBSITE)", func(c *Config) *string { return &c.Website }},
	{"project-text", "Caption under the customer logo (env DOCGEN_PROJECT_TEXT)", func(c *Config) *string { return &c.ProjectText }},
}

var intFlags = []intFlag{
	{"year", "Year in the fallback subtitle, 0 for the current year (env DOCGEN_YEAR)", func(c *Config) *int { return &c.Year }},
	{"concurrency", "Maximum concurrent renders in a batch (env DOCGEN_CONCURRENCY)", func(c *Config) *int { return &c.Concurrency }},
}

// BindAllFlags adds the logging and configuration flags to the flag set.
func BindAllFlags(flags *pflag.FlagSet) *AllFlags {
	flags.CountVarP(&Flags.Flags.LevelCount, "loglevel", "v", "Increase logging level")
	flags.StringVar(&Flags.Flags.Level, "log-level", "info", "Set the default log level")
	flags.BoolVar(&Flags.Flags.JsonLogs, "json-logs", false, "Print logs in json format to stderr")

	flags.BoolVar(&Flags.Flags.ReportCaller, "report-caller", false, "Report log caller info")
	flags.BoolVar(&Flags.Flags.LogToStderr, "log-to-stderr", true, "Log to stderr instead of stdout")

	flags.StringVarP(&Flags.ConfigFile, "config", "c", "", "YAML config file overlaid on DOCGEN_* environment variables")
	for _, f := range stringFlags {
		flags.StringVar(f.field(&Flags.Overrides), f.name, "", f.usage)
	}
	for _, f := range intFlags {
		flags.IntVar(f.field(&Flags.Overrides), f.name, 0, f.usage)
	}
	return &Flags
}

// Config loads the configuration and applies the flags that were set on the
// command line.
func (a AllFlags) Config(flags *pflag.FlagSet) (*Config, error) {
	cfg, err := LoadConfig(a.ConfigFile)
	if err != nil {
		return nil, err
	}
	for _, f := range stringFlags {
		if flags.Changed(f.name) {
			*f.field(cfg) = *f.field(&a.Overrides)
		}
	}
	for _, f := range intFlags {
		if flags.Changed(f.name) {
			*f.field(cfg) = *f.field(&a.Overrides)
		}
	}
	logger.Debugf("using config: %s", cfg)
	return cfg, nil
}

func (c Config) String() string {
	data, _ := yaml.Marshal(c)
	return string(data)
}

func (a AllFlags) UseFlags() {
	logger.Configure(a.Flags)
	logger.Debugf("Using logger flags: level=%s count=%d json=%v", a.Level, a.LevelCount, a.JsonLogs)
}
