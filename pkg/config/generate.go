package config

import (
	"os"
	"path/filepath"

	"github.com/adamnew123456/usm/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

const sampleHeader = `# usm configuration.
# Values here are overridden by USM_* environment variables.

`

// WriteSample writes a commented sample configuration file reflecting
// the current settings. Fails if the file already exists.
func WriteSample(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrAlreadyExists, "config file %s already exists", path)
	}

	body, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create config directory for %s", path)
	}

	content := append([]byte(sampleHeader), body...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write config file %s", path)
	}

	return nil
}
