// Command quotes-service serves the quotes API.
package main

import (
	"fmt"
	"os"
)

// Set at link time, for example
//
//	go build -ldflags "-X main.Version=$(git describe --tags) -X main.BuildTime=$(date -u +%FT%TZ)" ./cmd/service
//
// An unset Commit falls back to the VCS stamp the go tool embeds.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "quotes-service:", err)
	os.Exit(1)
}
