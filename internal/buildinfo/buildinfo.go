// Package buildinfo exposes build metadata injected at link time via ldflags:
//
//	go build -ldflags "-X .../internal/buildinfo.BuildVersion=v1.2.0 \
//	    -X .../internal/buildinfo.BuildDate=2026-09-01"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	BuildVersion = "N/A"
	BuildDate    = "N/A"
	BuildCommit  = "N/A"
)

// PrintBuildData writes the build version, date and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", BuildVersion)
	fmt.Fprintf(w, "Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "Build commit: %s\n", BuildCommit)
}
