package types

// VersionRecord is one row of a store listing: a single installed
// version of an application and whether it is the one the application's
// current pointer designates.
type VersionRecord struct {
	App       string
	Version   string
	IsCurrent bool
}

// ListFilter narrows a listing to an exact application and/or version
// name. Empty fields match everything.
type ListFilter struct {
	App     string
	Version string
}

// Matches reports whether a record passes the filter.
func (f ListFilter) Matches(r VersionRecord) bool {
	if f.App != "" && f.App != r.App {
		return false
	}
	if f.Version != "" && f.Version != r.Version {
		return false
	}
	return true
}
