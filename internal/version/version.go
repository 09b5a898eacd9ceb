// Package version holds build information set with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/mj1618/axsearch/internal/version.Version=1.2.0"
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

