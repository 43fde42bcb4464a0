// Package config loads the settings the pgelog command-line driver
// feeds into a Logger: workflow identity, error-code base, and log
// file paths. The core library never reads configuration itself — it
// takes these values as explicit builder options — and there is
// deliberately no level-filtering knob here.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/pgekit/pgelog/errorcode"
)

// Config is the driver configuration.
type Config struct {
	// Workflow is the name stamped on every record.
	Workflow string `mapstructure:"workflow"`
	// ErrorCodeBase is the base added to record offsets.
	ErrorCodeBase int `mapstructure:"error_code_base"`
	// LogFile is the path the log persists to. Empty means the
	// timestamp-derived default.
	LogFile string `mapstructure:"log_file"`
	// OutputFile, when set, is the final path the log is moved to
	// before closing.
	OutputFile string `mapstructure:"output_file"`
}

// Load reads configuration from the given file (optional), with
// environment overrides under the PGELOG_ prefix.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("workflow", "")
	v.SetDefault("error_code_base", int(errorcode.LoggerCodeBase))
	v.SetDefault("log_file", "")
	v.SetDefault("output_file", "")

	v.SetEnvPrefix("PGELOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
