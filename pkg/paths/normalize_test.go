// pkg/paths/normalize_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None (pure functions)
// PURPOSE: Test path normalization across filesystem styles

package paths_test

import (
	"testing"

	"github.com/adamnew123456/usm/pkg/paths"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeStyle(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		style paths.Style
		want  string
	}{
		{
			name:  "case_preserve_keeps_case",
			path:  "/Apps/Tool",
			style: paths.StyleCasePreserve,
			want:  "/Apps/Tool",
		},
		{
			name:  "case_preserve_strips_single_trailing",
			path:  "/apps/tool/",
			style: paths.StyleCasePreserve,
			want:  "/apps/tool",
		},
		{
			name:  "case_preserve_strips_only_one_trailing",
			path:  "/apps/tool//",
			style: paths.StyleCasePreserve,
			want:  "/apps/tool/",
		},
		{
			name:  "case_fold_lowercases",
			path:  "/Apps/Tool",
			style: paths.StyleCaseFold,
			want:  "/apps/tool",
		},
		{
			name:  "case_fold_strips_all_trailing",
			path:  "/Apps/Tool///",
			style: paths.StyleCaseFold,
			want:  "/apps/tool",
		},
		{
			name:  "fold_separators_unifies",
			path:  `C:\Apps\Tool`,
			style: paths.StyleCaseFoldSeparators,
			want:  "c:/apps/tool",
		},
		{
			name:  "fold_separators_strips_single_trailing",
			path:  `C:\Apps\Tool\`,
			style: paths.StyleCaseFoldSeparators,
			want:  "c:/apps/tool",
		},
		{
			name:  "fold_separators_mixed",
			path:  `C:/Apps\Tool`,
			style: paths.StyleCaseFoldSeparators,
			want:  "c:/apps/tool",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.NormalizeStyle(tt.path, tt.style))
		})
	}
}

func TestNormalizeStyle_IsDeterministic(t *testing.T) {
	// Normalization is defined per path in isolation: same input, same
	// output, regardless of what exists on disk.
	for i := 0; i < 3; i++ {
		assert.Equal(t, "/a/b", paths.NormalizeStyle("/a/b/", paths.StyleCasePreserve))
	}
}

func TestUnderRootStyle(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		root  string
		style paths.Style
		want  bool
	}{
		{
			name:  "exact_match",
			entry: "/apps",
			root:  "/apps",
			style: paths.StyleCasePreserve,
			want:  true,
		},
		{
			name:  "child_entry",
			entry: "/apps/tool/current/bin",
			root:  "/apps",
			style: paths.StyleCasePreserve,
			want:  true,
		},
		{
			name:  "trailing_separator_on_root",
			entry: "/apps/tool/current/bin",
			root:  "/apps/",
			style: paths.StyleCasePreserve,
			want:  true,
		},
		{
			name:  "case_variant_fold",
			entry: "/Apps/Foo/current/bin",
			root:  "/apps",
			style: paths.StyleCaseFold,
			want:  true,
		},
		{
			name:  "case_variant_preserve",
			entry: "/Apps/Foo/current/bin",
			root:  "/apps",
			style: paths.StyleCasePreserve,
			want:  false,
		},
		{
			name:  "sibling_prefix_not_matched",
			entry: "/appsx/tool/bin",
			root:  "/apps",
			style: paths.StyleCasePreserve,
			want:  false,
		},
		{
			name:  "unrelated_entry",
			entry: "/usr/bin",
			root:  "/apps",
			style: paths.StyleCaseFold,
			want:  false,
		},
		{
			name:  "windows_separator_variants",
			entry: `C:\Apps\tool\current\bin`,
			root:  "c:/apps",
			style: paths.StyleCaseFoldSeparators,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.UnderRootStyle(tt.entry, tt.root, tt.style))
		})
	}
}
