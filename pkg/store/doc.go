// Package store implements the version store: the on-disk layout of
// applications and versions under a single root, and the "current"
// pointer that designates each application's active version.
//
// Layout: root/<app>/<version>/ with root/<app>/current as a symlink
// to the active version directory. The tree is the persisted state;
// listings are re-derived by enumeration on every call rather than
// kept in an index that could drift.
//
// The store assumes a single interactive user issuing one command at a
// time. The pointer swap in SwitchVersion is remove-then-relink, so a
// crash between the two steps can leave an application pointer-less;
// callers needing multi-process safety must lock around the root.
package store
