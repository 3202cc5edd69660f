package version

import "fmt"

// Build metadata, overridden at release time via -ldflags. The defaults
// identify a local development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

// String renders the build identity for logs and startup banners.
func String() string {
	s := Version
	if Commit != "none" {
		s = fmt.Sprintf("%s (%s)", s, Commit)
	}
	if Dirty == "true" {
		s += "-dirty"
	}
	return s
}
