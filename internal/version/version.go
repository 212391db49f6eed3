// Package version reports build metadata for the generator binary.
//
// Values are injected with ldflags:
//
//	go build -ldflags "-X github.com/rickgao/treasury-testdata/internal/version.Version=1.0.0 \
//	                   -X github.com/rickgao/treasury-testdata/internal/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X github.com/rickgao/treasury-testdata/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/generator
package version

import "fmt"

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns "<version> (<commit>) built <time>".
func String() string {
	return fmt.Sprintf("%s (%s) built %s", Version, Commit, BuildTime)
}

// Attrs returns the build metadata as slog key/value pairs.
func Attrs() []any {
	return []any{"version", Version, "commit", Commit, "build_time", BuildTime}
}
