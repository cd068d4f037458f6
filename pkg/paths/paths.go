// Package paths provides centralized path handling for usm: resolution
// of the store root, the on-disk layout of applications and versions,
// and the pure normalization used for search-path comparison.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adamnew123456/usm/pkg/errors"
	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvRoot is the primary environment variable for the store root
	EnvRoot = "USM_ROOT"

	// EnvDataDir overrides the XDG data directory for usm
	EnvDataDir = "USM_DATA_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Layout names
// IMPORTANT: These constants define usm's on-disk store structure and
// are NOT user-configurable. The filesystem layout itself is the
// persisted state: root/<app>/<version>/ with root/<app>/current
// pointing at the active version.
const (
	// UsmDirName is the directory name for usm-specific files
	UsmDirName = "usm"

	// DefaultAppsDir is the default store directory name under the XDG data home
	DefaultAppsDir = "apps"

	// CurrentLinkName is the name of the per-application current pointer
	CurrentLinkName = "current"

	// BinDirName is the subdirectory of a version that holds executables
	BinDirName = "bin"
)

// Paths provides the store layout rooted at a single directory.
type Paths struct {
	root string
}

// New creates a Paths instance for the given root. If root is empty, it
// is resolved from USM_ROOT, falling back to <XDG data home>/usm/apps.
// The result is always absolute, with ~ expanded.
func New(root string) (*Paths, error) {
	if root == "" {
		root = os.Getenv(EnvRoot)
	}
	if root == "" {
		root = filepath.Join(DataDir(), DefaultAppsDir)
	}

	absRoot, err := filepath.Abs(expandHome(root))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for store root")
	}

	return &Paths{root: absRoot}, nil
}

// Root returns the store root directory.
func (p *Paths) Root() string {
	return p.root
}

// AppDir returns the directory for a specific application.
func (p *Paths) AppDir(app string) string {
	return filepath.Join(p.root, app)
}

// VersionDir returns the directory for a specific version of an application.
func (p *Paths) VersionDir(app, version string) string {
	return filepath.Join(p.root, app, version)
}

// VersionBinDir returns the bin subdirectory of a specific version.
func (p *Paths) VersionBinDir(app, version string) string {
	return filepath.Join(p.root, app, version, BinDirName)
}

// CurrentLink returns the path of an application's current pointer.
func (p *Paths) CurrentLink(app string) string {
	return filepath.Join(p.root, app, CurrentLinkName)
}

// CurrentBinDir returns the search-path entry contributed by an
// application: <root>/<app>/current/bin.
func (p *Paths) CurrentBinDir(app string) string {
	return filepath.Join(p.root, app, CurrentLinkName, BinDirName)
}

// DataDir returns the usm data directory under the XDG data home,
// where shell integration scripts are installed.
func DataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.DataHome, UsmDirName)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ExpandHome is the exported form of expandHome for callers outside the
// package.
func ExpandHome(path string) string {
	return expandHome(path)
}
