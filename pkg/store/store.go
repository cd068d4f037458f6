package store

import (
	"os"
	"sort"

	"github.com/adamnew123456/usm/pkg/errors"
	"github.com/adamnew123456/usm/pkg/logging"
	"github.com/adamnew123456/usm/pkg/paths"
	"github.com/adamnew123456/usm/pkg/types"
)

// Store owns the on-disk version layout: one directory per
// application, one subdirectory per version, and a "current" symlink
// per application pointing at the active version. The directory tree
// is the only persisted state; every query re-derives its answer from
// an enumeration.
type Store struct {
	fs      types.FS
	paths   *paths.Paths
	pointer *CurrentPointer
}

// New creates a Store over the given filesystem and layout.
func New(fs types.FS, p *paths.Paths) *Store {
	return &Store{
		fs:      fs,
		paths:   p,
		pointer: NewCurrentPointer(fs, p),
	}
}

// Pointer exposes the current-pointer accessor.
func (s *Store) Pointer() *CurrentPointer {
	return s.pointer
}

// Paths exposes the layout the store operates on.
func (s *Store) Paths() *paths.Paths {
	return s.paths
}

// CreateVersion creates a new version directory for an application,
// creating the application (and, for the very first application, the
// store root) as needed. The first version of a new application is
// automatically made current. Callers are responsible for resyncing
// the search path afterwards.
func (s *Store) CreateVersion(app, version string) error {
	logger := logging.GetLogger("store")

	if err := paths.ValidateAppName(app); err != nil {
		return err
	}
	if err := paths.ValidateVersionName(version); err != nil {
		return err
	}

	newApp := false
	if _, err := s.fs.Stat(s.paths.AppDir(app)); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot access application %s", app)
		}
		newApp = true
	}

	versionDir := s.paths.VersionDir(app, version)
	if !newApp {
		if _, err := s.fs.Lstat(versionDir); err == nil {
			return errors.Newf(errors.ErrAlreadyExists, "version %s of %s already exists", version, app).
				WithDetail("app", app).
				WithDetail("version", version)
		}
	}

	// Pre-create bin so a fresh version contributes a real PATH entry
	if err := s.fs.MkdirAll(s.paths.VersionBinDir(app, version), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create version %s of %s", version, app)
	}

	logger.Debug().
		Str("app", app).
		Str("version", version).
		Bool("newApp", newApp).
		Msg("Created version directory")

	if newApp {
		// First version of a new application becomes current
		return s.SwitchVersion(app, version)
	}

	return nil
}

// SwitchVersion repoints an application's current pointer at an
// existing version.
func (s *Store) SwitchVersion(app, version string) error {
	logger := logging.GetLogger("store")

	if err := paths.ValidateAppName(app); err != nil {
		return err
	}
	if err := paths.ValidateVersionName(version); err != nil {
		return err
	}

	if _, err := s.fs.Stat(s.paths.AppDir(app)); err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrNotFound, "application %s does not exist", app).
				WithDetail("app", app)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot access application %s", app)
	}

	if _, err := s.fs.Stat(s.paths.VersionDir(app, version)); err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrNotFound, "version %s of %s does not exist", version, app).
				WithDetail("app", app).
				WithDetail("version", version)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot access version %s of %s", version, app)
	}

	if err := s.pointer.Set(app, version); err != nil {
		return err
	}

	logger.Info().
		Str("app", app).
		Str("version", version).
		Msg("Switched current version")
	return nil
}

// ListVersions enumerates every version of every application under the
// root, marking each application's current version. The result is
// sorted by application then version, so a single call is stable. The
// current pointer itself is never listed.
func (s *Store) ListVersions(filter types.ListFilter) ([]types.VersionRecord, error) {
	if err := s.requireRoot(); err != nil {
		return nil, err
	}

	apps, err := s.fs.ReadDir(s.paths.Root())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read store root").
			WithDetail("path", s.paths.Root())
	}

	var records []types.VersionRecord
	for _, appEntry := range apps {
		if !appEntry.IsDir() {
			continue
		}
		app := appEntry.Name()

		current, err := s.pointer.Target(app)
		if err != nil {
			return nil, err
		}

		children, err := s.fs.ReadDir(s.paths.AppDir(app))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read application %s", app)
		}

		for _, child := range children {
			if child.Name() == paths.CurrentLinkName {
				continue
			}
			if !child.IsDir() {
				continue
			}
			record := types.VersionRecord{
				App:       app,
				Version:   child.Name(),
				IsCurrent: child.Name() == current,
			}
			if filter.Matches(record) {
				records = append(records, record)
			}
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].App != records[j].App {
			return records[i].App < records[j].App
		}
		return records[i].Version < records[j].Version
	})

	return records, nil
}

// RemoveVersion deletes one version of an application. The version an
// application's current pointer designates cannot be removed; switch
// away from it first.
func (s *Store) RemoveVersion(app, version string) error {
	logger := logging.GetLogger("store")

	if err := paths.ValidateAppName(app); err != nil {
		return err
	}
	if err := paths.ValidateVersionName(version); err != nil {
		return err
	}

	if err := s.requireRoot(); err != nil {
		return err
	}

	if _, err := s.fs.Stat(s.paths.AppDir(app)); err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrNotFound, "application %s does not exist", app).
				WithDetail("app", app)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot access application %s", app)
	}

	versionDir := s.paths.VersionDir(app, version)
	if _, err := s.fs.Stat(versionDir); err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrNotFound, "version %s of %s does not exist", version, app).
				WithDetail("app", app).
				WithDetail("version", version)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot access version %s of %s", version, app)
	}

	current, err := s.pointer.Target(app)
	if err != nil {
		return err
	}
	if version == current {
		return errors.Newf(errors.ErrInUse, "version %s is the current version of %s", version, app).
			WithDetail("app", app).
			WithDetail("version", version)
	}

	if err := s.fs.RemoveAll(versionDir); err != nil {
		return errors.Wrapf(err, errors.ErrDirRemove, "cannot remove version %s of %s", version, app)
	}

	logger.Info().
		Str("app", app).
		Str("version", version).
		Msg("Removed version")
	return nil
}

// RemoveApplication deletes an application wholesale: all versions and
// the current pointer. No in-use check applies.
func (s *Store) RemoveApplication(app string) error {
	logger := logging.GetLogger("store")

	if err := paths.ValidateAppName(app); err != nil {
		return err
	}

	if err := s.requireRoot(); err != nil {
		return err
	}

	appDir := s.paths.AppDir(app)
	if _, err := s.fs.Stat(appDir); err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrNotFound, "application %s does not exist", app).
				WithDetail("app", app)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot access application %s", app)
	}

	if err := s.fs.RemoveAll(appDir); err != nil {
		return errors.Wrapf(err, errors.ErrDirRemove, "cannot remove application %s", app)
	}

	logger.Info().Str("app", app).Msg("Removed application")
	return nil
}

// ValidateRemovalArgs enforces the removal contract at the command
// boundary: exactly one of a version name or remove-all.
func ValidateRemovalArgs(version string, all bool) error {
	if all && version != "" {
		return errors.New(errors.ErrInvalidInput, "specify either a version or --all, not both")
	}
	if !all && version == "" {
		return errors.New(errors.ErrInvalidInput, "specify a version to remove, or --all for the whole application")
	}
	return nil
}

// requireRoot fails with STORE_NOT_INITIALIZED when the root directory
// is missing.
func (s *Store) requireRoot() error {
	if _, err := s.fs.Stat(s.paths.Root()); err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrStoreNotInit, "store root %s does not exist", s.paths.Root()).
				WithDetail("path", s.paths.Root())
		}
		return errors.Wrap(err, errors.ErrFileAccess, "cannot access store root").
			WithDetail("path", s.paths.Root())
	}
	return nil
}
