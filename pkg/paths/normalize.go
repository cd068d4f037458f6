package paths

import (
	"runtime"
	"strings"
)

// Style selects the normalization rules for a filesystem family. It is
// an explicit value rather than a build tag so every style is testable
// on any host.
type Style int

const (
	// StyleCasePreserve is for case-sensitive filesystems: a single
	// trailing separator is stripped, case is kept.
	StyleCasePreserve Style = iota

	// StyleCaseFold is for case-insensitive filesystems with a fixed
	// separator: the path is lower-cased and all trailing separators
	// are stripped.
	StyleCaseFold

	// StyleCaseFoldSeparators is for case-insensitive filesystems that
	// accept either separator: the path is lower-cased, separators are
	// unified, and a single trailing separator is stripped.
	StyleCaseFoldSeparators
)

// NativeStyle returns the normalization style for the running OS.
func NativeStyle() Style {
	switch runtime.GOOS {
	case "windows":
		return StyleCaseFoldSeparators
	case "darwin":
		return StyleCaseFold
	default:
		return StyleCasePreserve
	}
}

// NormalizeStyle canonicalizes a path string under the given style so
// that equivalent paths compare equal. It is pure: no filesystem
// access, each path normalized in isolation.
func NormalizeStyle(path string, style Style) string {
	switch style {
	case StyleCaseFoldSeparators:
		p := strings.ToLower(path)
		p = strings.ReplaceAll(p, "\\", "/")
		return strings.TrimSuffix(p, "/")
	case StyleCaseFold:
		p := strings.ToLower(path)
		return strings.TrimRight(p, "/")
	default:
		return strings.TrimSuffix(path, "/")
	}
}

// Normalize canonicalizes a path string using the native style.
func Normalize(path string) string {
	return NormalizeStyle(path, NativeStyle())
}

// UnderRootStyle reports whether entry lies at or below root once both
// are normalized under the given style. Used to decide whether a
// search-path entry belongs to the store.
func UnderRootStyle(entry, root string, style Style) bool {
	e := NormalizeStyle(entry, style)
	r := NormalizeStyle(root, style)
	if e == r {
		return true
	}
	sep := "/"
	if style == StyleCasePreserve {
		// Entries on case-sensitive systems keep their native separator
		sep = string(separatorFor(entry))
	}
	return strings.HasPrefix(e, r+sep)
}

// UnderRoot reports whether entry lies under root using the native style.
func UnderRoot(entry, root string) bool {
	return UnderRootStyle(entry, root, NativeStyle())
}

func separatorFor(path string) byte {
	if strings.ContainsRune(path, '\\') && !strings.ContainsRune(path, '/') {
		return '\\'
	}
	return '/'
}
