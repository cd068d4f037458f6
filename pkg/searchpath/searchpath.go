// Package searchpath rebuilds the executable search path from the
// version store layout. Resync takes the existing entries and returns
// a new sequence; installing the result into the process environment
// is the caller's choice (ResyncEnv does it for the CLI).
package searchpath

import (
	"os"
	"strings"

	"github.com/adamnew123456/usm/pkg/errors"
	"github.com/adamnew123456/usm/pkg/logging"
	"github.com/adamnew123456/usm/pkg/paths"
	"github.com/adamnew123456/usm/pkg/types"
)

// EnvPath is the search-path variable the synchronizer maintains.
const EnvPath = "PATH"

// Split breaks a search-path value into its ordered entries. An empty
// value yields no entries.
func Split(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, string(os.PathListSeparator))
}

// Join assembles entries back into a search-path value.
func Join(entries []string) string {
	return strings.Join(entries, string(os.PathListSeparator))
}

// Resync computes a new search-path sequence from the store layout:
// every entry under the root is dropped, then one <root>/<app>/current/bin
// entry is appended per application directory, whether or not that
// application's pointer currently resolves. Recomputing from scratch
// converges regardless of prior corruption or manual edits.
func Resync(entries []string, p *paths.Paths, fsys types.FS) ([]string, error) {
	return ResyncStyle(entries, p, fsys, paths.NativeStyle())
}

// ResyncStyle is Resync with an explicit normalization style, so every
// platform's comparison rules are testable on any host.
func ResyncStyle(entries []string, p *paths.Paths, fsys types.FS, style paths.Style) ([]string, error) {
	logger := logging.GetLogger("searchpath")
	root := p.Root()

	if _, err := fsys.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrStoreNotInit, "store root %s does not exist", root).
				WithDetail("path", root)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access store root").
			WithDetail("path", root)
	}

	// Drop every entry that belongs to the root, stale or not
	var result []string
	dropped := 0
	for _, entry := range entries {
		if paths.UnderRootStyle(entry, root, style) {
			dropped++
			continue
		}
		result = append(result, entry)
	}

	// Append one current/bin entry per application directory
	appEntries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read store root").
			WithDetail("path", root)
	}

	added := 0
	for _, entry := range appEntries {
		if !entry.IsDir() {
			continue
		}
		result = append(result, p.CurrentBinDir(entry.Name()))
		added++
	}

	logger.Debug().
		Int("dropped", dropped).
		Int("added", added).
		Msg("Resynchronized search path")

	return result, nil
}

// ResyncEnv reads PATH from the process environment, resyncs it
// against the store, installs the result, and returns the new value.
func ResyncEnv(p *paths.Paths, fsys types.FS) (string, error) {
	entries := Split(os.Getenv(EnvPath))

	resynced, err := Resync(entries, p, fsys)
	if err != nil {
		return "", err
	}

	value := Join(resynced)
	if err := os.Setenv(EnvPath, value); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot install search path")
	}

	return value, nil
}
