package options

import (
	"fmt"
	"io"
)

// PrintHelp writes the usage banner for prog to w
func PrintHelp(w io.Writer, prog string) {
	fmt.Fprintf(w, "Usage: %s [OPTIONS]\n", prog)
	fmt.Fprintf(w, " -d, --dev-mem FILE   Read memory from device FILE (default: %s)\n", DefaultMemDevice)
	fmt.Fprint(w, " -h, --help           Display this help text and exit\n")
	fmt.Fprint(w, " -q, --quiet          Less verbose output\n")
	fmt.Fprint(w, " -t, --type TYPE      Only display the entries of given type\n")
	fmt.Fprint(w, " -u, --dump           Do not decode the entries\n")
	fmt.Fprint(w, " -V, --version        Display the version and exit\n")
}
