// Package buildinfo reports which starfield build is running.
//
// Release builds stamp the variables with ldflags:
//
//	go build -ldflags "-X github.com/plinyoo/starfield/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/plinyoo/starfield/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/plinyoo/starfield/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/starfield
package buildinfo

import "fmt"

// Stamped at link time. Development builds keep the defaults.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the build identity served by /healthz.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the current build identity with the commit shortened to
// twelve characters.
func Get() Info {
	return Info{Version: Version, Commit: shortCommit(Commit), Date: Date}
}

func shortCommit(c string) string {
	if len(c) > 12 {
		return c[:12]
	}
	return c
}

// String returns "v0.3.0 (abc123def456, 2026-01-02T03:04:05Z)".
func (i Info) String() string {
	return fmt.Sprintf("%s (%s, %s)", i.Version, i.Commit, i.Date)
}

// Template returns the cobra version template.
func Template() string {
	return "{{.Name}} " + Get().String() + "\n"
}
