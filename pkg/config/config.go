// Package config loads usm configuration: embedded defaults, an
// optional user file under the XDG config home, environment overrides
// with the USM_ prefix, and finally explicit caller values.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adamnew123456/usm/pkg/errors"
	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix for environment overrides (USM_ROOT,
// USM_RESYNC_AUTO, ...).
const EnvPrefix = "USM_"

// EnvConfigDir overrides the XDG config directory for usm.
const EnvConfigDir = "USM_CONFIG_DIR"

// ConfigFileName is the user configuration file under the XDG config
// home.
const ConfigFileName = "usm.toml"

// Config is the resolved usm configuration.
type Config struct {
	// Root is the store root directory. Empty means the paths package
	// falls back to its XDG default.
	Root string `koanf:"root"`

	Resync ResyncConfig `koanf:"resync"`
}

// ResyncConfig controls search-path resynchronization behavior.
type ResyncConfig struct {
	// Auto rebuilds PATH after every store mutation.
	Auto bool `koanf:"auto"`
}

// Overrides are explicit caller values (CLI flags) that win over every
// other source.
type Overrides struct {
	Root string
}

// Load builds the merged configuration: defaults, then user file, then
// environment, then overrides.
func Load(overrides Overrides) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default configuration")
	}

	// 2. User config file, when present
	userConfig := UserConfigPath()
	if _, err := os.Stat(userConfig); err == nil {
		if err := k.Load(file.Provider(userConfig), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", userConfig)
		}
	}

	// 3. Environment: USM_ROOT -> root, USM_RESYNC_AUTO -> resync.auto.
	// Empty variables count as unset.
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), "_", "."), value
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment configuration")
	}

	// 4. Explicit overrides
	if overrides.Root != "" {
		if err := k.Load(confmap.Provider(map[string]interface{}{"root": overrides.Root}, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// UserConfigPath returns the location of the user configuration file.
func UserConfigPath() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return filepath.Join(dir, ConfigFileName)
	}
	return filepath.Join(xdg.ConfigHome, "usm", ConfigFileName)
}

// rawBytesProvider feeds in-memory bytes to koanf.
type rawBytesProvider struct {
	bytes []byte
}

func (r *rawBytesProvider) ReadBytes() ([]byte, error) {
	return r.bytes, nil
}

func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "rawBytesProvider does not support Read")
}
