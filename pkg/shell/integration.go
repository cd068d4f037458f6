// Package shell provides the shell-startup integration: embedded init
// scripts that resync PATH from the store, an installer that places
// them under the usm data directory, and the profile snippets that
// source them.
package shell

import (
	_ "embed"
	"path/filepath"

	"github.com/adamnew123456/usm/pkg/errors"
	"github.com/adamnew123456/usm/pkg/logging"
	"github.com/adamnew123456/usm/pkg/types"
)

//go:embed usm-init.sh
var initScriptSh []byte

//go:embed usm-init.fish
var initScriptFish []byte

// Script names under <dataDir>/shell/
const (
	InitScriptSh   = "usm-init.sh"
	InitScriptFish = "usm-init.fish"
)

// InstallShellIntegration writes the init scripts into
// <dataDir>/shell/ and marks them executable.
func InstallShellIntegration(dataDir string, fsys types.FS) error {
	logger := logging.GetLogger("shell")
	shellDir := filepath.Join(dataDir, "shell")

	if err := fsys.MkdirAll(shellDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create shell directory %s", shellDir)
	}

	scripts := map[string][]byte{
		InitScriptSh:   initScriptSh,
		InitScriptFish: initScriptFish,
	}

	for name, content := range scripts {
		dest := filepath.Join(shellDir, name)
		if err := fsys.WriteFile(dest, content, 0644); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to write shell script %s", dest)
		}
		if err := fsys.Chmod(dest, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to make shell script executable: %s", dest)
		}
		logger.Info().Str("script", name).Str("dest", dest).Msg("Installed shell integration script")
	}

	return nil
}
