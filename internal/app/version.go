package app

import (
	"fmt"
	"io"
)

// ProgName is the name printed in usage and headers
const ProgName = "godmi"

// Version information (set by build flags)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// ShowVersion writes the bare version string, as --version expects
func ShowVersion(w io.Writer) {
	fmt.Fprintln(w, Version)
}
