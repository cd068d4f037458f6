package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/adamnew123456/usm/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/adamnew123456/usm/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/adamnew123456/usm/internal/version.Date={{.Date}}
)
