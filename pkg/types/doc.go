// Package types contains the shared types used across usm packages:
// the filesystem abstraction and the records produced by store queries.
package types
