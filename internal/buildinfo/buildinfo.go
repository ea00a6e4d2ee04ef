package buildinfo

import "fmt"

// Overridden at build time with -ldflags "-X github.com/aalvaropc/querylab/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("querylab %s (commit=%s, date=%s)", Version, Commit, Date)
}
