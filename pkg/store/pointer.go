package store

import (
	"os"
	"path/filepath"

	"github.com/adamnew123456/usm/pkg/errors"
	"github.com/adamnew123456/usm/pkg/paths"
	"github.com/adamnew123456/usm/pkg/types"
)

// CurrentPointer wraps the per-application "current" symlink. The
// remove-then-relink sequence lives only here; switching to an atomic
// rename-into-place on platforms that support it would touch no caller.
//
// The link target is relative (just the version name) so a store root
// can be relocated without breaking pointers.
type CurrentPointer struct {
	fs    types.FS
	paths *paths.Paths
}

// NewCurrentPointer creates a pointer accessor over the given layout.
func NewCurrentPointer(fs types.FS, p *paths.Paths) *CurrentPointer {
	return &CurrentPointer{fs: fs, paths: p}
}

// Target returns the version name the application's current pointer
// designates, or "" when no pointer exists.
func (c *CurrentPointer) Target(app string) (string, error) {
	link := c.paths.CurrentLink(app)

	if _, err := c.fs.Lstat(link); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect current pointer for %s", app)
	}

	target, err := c.fs.Readlink(link)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot read current pointer for %s", app)
	}

	// Targets may be relative (version name) or absolute (older stores)
	return filepath.Base(target), nil
}

// Set repoints the application's current pointer at the given version.
// An existing pointer is removed first; the application is pointer-less
// only inside this call.
func (c *CurrentPointer) Set(app, version string) error {
	link := c.paths.CurrentLink(app)

	if _, err := c.fs.Lstat(link); err == nil {
		if err := c.fs.Remove(link); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot remove current pointer for %s", app)
		}
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect current pointer for %s", app)
	}

	if err := c.fs.Symlink(version, link); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot create current pointer for %s", app)
	}

	return nil
}

// Clear removes the application's current pointer if present.
func (c *CurrentPointer) Clear(app string) error {
	link := c.paths.CurrentLink(app)

	if err := c.fs.Remove(link); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot remove current pointer for %s", app)
	}

	return nil
}
