package paths

import (
	"strings"

	"github.com/adamnew123456/usm/pkg/errors"
)

// ValidateAppName checks that an application name is usable as a
// directory name under the store root.
func ValidateAppName(app string) error {
	if app == "" {
		return errors.New(errors.ErrInvalidInput, "application name must not be empty")
	}
	if app == CurrentLinkName {
		return errors.Newf(errors.ErrReservedName, "application name %q is reserved", CurrentLinkName)
	}
	if err := validatePathComponent(app); err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "invalid application name %q", app)
	}
	return nil
}

// ValidateVersionName checks that a version name is usable as a
// directory name under an application directory. The name "current" is
// reserved for the pointer.
func ValidateVersionName(version string) error {
	if version == "" {
		return errors.New(errors.ErrInvalidInput, "version name must not be empty")
	}
	if version == CurrentLinkName {
		return errors.Newf(errors.ErrReservedName, "version name %q is reserved for the current pointer", CurrentLinkName)
	}
	if err := validatePathComponent(version); err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "invalid version name %q", version)
	}
	return nil
}

func validatePathComponent(name string) error {
	if name == "." || name == ".." {
		return errors.New(errors.ErrInvalidInput, "name must not be a relative path element")
	}
	if strings.ContainsAny(name, `/\`) {
		return errors.New(errors.ErrInvalidInput, "name must not contain path separators")
	}
	return nil
}
