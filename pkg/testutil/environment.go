// Package testutil provides shared helpers for usm tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/adamnew123456/usm/pkg/filesystem"
	"github.com/adamnew123456/usm/pkg/paths"
	"github.com/adamnew123456/usm/pkg/store"
	"github.com/adamnew123456/usm/pkg/types"
	"github.com/stretchr/testify/require"
)

// Env is a throwaway store rooted in a temp directory.
type Env struct {
	Root  string
	FS    types.FS
	Paths *paths.Paths
	Store *store.Store
}

// NewEnv creates a store environment over the real filesystem under
// t.TempDir(). The root directory itself is created.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	root := filepath.Join(t.TempDir(), "apps")
	fs := filesystem.NewOS()
	require.NoError(t, fs.MkdirAll(root, 0755))

	p, err := paths.New(root)
	require.NoError(t, err)

	return &Env{
		Root:  root,
		FS:    fs,
		Paths: p,
		Store: store.New(fs, p),
	}
}

// NewEnvWithoutRoot creates an environment whose root directory does
// not exist, for store-not-initialized cases.
func NewEnvWithoutRoot(t *testing.T) *Env {
	t.Helper()

	root := filepath.Join(t.TempDir(), "apps")
	fs := filesystem.NewOS()

	p, err := paths.New(root)
	require.NoError(t, err)

	return &Env{
		Root:  root,
		FS:    fs,
		Paths: p,
		Store: store.New(fs, p),
	}
}

// AddVersion seeds a version directory (with its bin subdirectory)
// through the store API.
func (e *Env) AddVersion(t *testing.T, app, version string) {
	t.Helper()
	require.NoError(t, e.Store.CreateVersion(app, version))
}
