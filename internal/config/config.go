// Package config reads the optional TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/heneryville/graphql-schema-utils/internal/report"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = ".graphql-schema-utils.toml"

const defaultService = "graphql-schema-utils"

type Config struct {
	Diff      Diff      `toml:"diff"`
	Telemetry Telemetry `toml:"telemetry"`
}

// Diff holds defaults for the diff command.
type Diff struct {
	LabelThis         string `toml:"label_this"`
	LabelOther        string `toml:"label_other"`
	Format            string `toml:"format"`
	FailOnBreaking    bool   `toml:"fail_on_breaking"`
	IncludeCompatible bool   `toml:"include_compatible"`
}

// Telemetry configures trace export. An empty Endpoint disables it.
type Telemetry struct {
	Endpoint string `toml:"endpoint"`
	Service  string `toml:"service"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Diff: Diff{
			Format:            report.FormatText,
			IncludeCompatible: true,
		},
		Telemetry: Telemetry{Service: defaultService},
	}
}

// Load reads path over the defaults. An empty path reads DefaultFile and
// tolerates its absence; a named file must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	return Parse(path, data)
}

// Parse decodes data over the defaults. name is used in error messages.
func Parse(name string, data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", name, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("parse %s: unknown key %s", name, undecoded[0])
	}
	if cfg.Telemetry.Service == "" {
		cfg.Telemetry.Service = defaultService
	}
	if err := report.ValidateFormat(cfg.Diff.Format); err != nil {
		return Config{}, fmt.Errorf("parse %s: diff.format: %w", name, err)
	}
	return cfg, nil
}
