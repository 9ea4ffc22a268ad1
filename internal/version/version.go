// Package version holds build metadata, set with -ldflags at release time:
//
//	go build -ldflags "-X github.com/notational-fzf/shorten-path/internal/version.Version=v1.2.0"
package version

var (
	// Version is the released version
	Version = "dev"
	// CommitSHA is the commit the binary was built from
	CommitSHA = "unknown"
	// BuildDate is the build time in RFC 3339
	BuildDate = "unknown"
)
