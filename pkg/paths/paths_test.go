// pkg/paths/paths_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Environment variables only (t.Setenv)
// PURPOSE: Test store root resolution and layout accessors

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adamnew123456/usm/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ExplicitRoot(t *testing.T) {
	tempDir := t.TempDir()

	p, err := paths.New(tempDir)
	require.NoError(t, err)
	assert.Equal(t, tempDir, p.Root())
}

func TestNew_EnvRoot(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv(paths.EnvRoot, tempDir)

	p, err := paths.New("")
	require.NoError(t, err)
	assert.Equal(t, tempDir, p.Root())
}

func TestNew_XDGFallback(t *testing.T) {
	t.Setenv(paths.EnvRoot, "")
	t.Setenv(paths.EnvDataDir, "")

	p, err := paths.New("")
	require.NoError(t, err)

	// Falls back under the XDG data home
	assert.True(t, filepath.IsAbs(p.Root()))
	assert.Equal(t, "apps", filepath.Base(p.Root()))
	assert.Equal(t, "usm", filepath.Base(filepath.Dir(p.Root())))
}

func TestNew_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	p, err := paths.New("~/sw")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "sw"), p.Root())
}

func TestLayoutAccessors(t *testing.T) {
	root := t.TempDir()
	p, err := paths.New(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "tool"), p.AppDir("tool"))
	assert.Equal(t, filepath.Join(root, "tool", "1.0"), p.VersionDir("tool", "1.0"))
	assert.Equal(t, filepath.Join(root, "tool", "current"), p.CurrentLink("tool"))
	assert.Equal(t, filepath.Join(root, "tool", "current", "bin"), p.CurrentBinDir("tool"))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "bare_tilde", path: "~", want: home},
		{name: "tilde_slash", path: "~/apps", want: filepath.Join(home, "apps")},
		{name: "tilde_user", path: "~other/apps", want: "~other/apps"},
		{name: "absolute", path: "/opt/apps", want: "/opt/apps"},
		{name: "empty", path: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.ExpandHome(tt.path))
		})
	}
}
