// Package options parses the godmi command line.
//
// The grammar is the short option string "d:hqt:uV" plus the long options
// --dev-mem, --help, --quiet, --type, --dump and --version, read with
// getopt_long rules: bundled short options, attached short arguments and
// unambiguous long prefixes. Every --type occurrence is fed to
// dmitype.Build and the selections accumulate.
package options

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"godmi/internal/dmitype"
)

var (
	// ErrUnknownOption is returned for options outside the grammar
	ErrUnknownOption = errors.New("unknown option")
	// ErrMissingArgument is returned when -d or -t has no argument
	ErrMissingArgument = errors.New("option requires an argument")
	// ErrAmbiguousOption is returned for a long prefix naming several options
	ErrAmbiguousOption = errors.New("ambiguous option")
	// ErrUnexpectedArgument is returned for "--help=x" and the like
	ErrUnexpectedArgument = errors.New("option does not take an argument")
	// ErrInvalidArgument is returned when an option rejects its value
	ErrInvalidArgument = errors.New("invalid argument")
)

// typeValue adapts the type filter builder to pflag. It keeps the builder
// error because pflag flattens Set errors into plain strings.
type typeValue struct {
	sel *dmitype.Selection
	err error
}

func (v *typeValue) Set(s string) error {
	f, err := dmitype.Build(*v.sel, s)
	if err != nil {
		v.err = err
		return err
	}
	*v.sel = dmitype.Some(f)
	return nil
}

func (v *typeValue) String() string {
	if v.sel == nil {
		return ""
	}
	return v.sel.String()
}

func (v *typeValue) Type() string {
	return "TYPE"
}

// Parse parses args, which must not include the program name. On any error
// no Config is returned.
func Parse(args []string) (*Config, error) {
	cfg := &Config{}
	tv := &typeValue{sel: &cfg.Types}

	fs := pflag.NewFlagSet("godmi", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	fs.StringVarP(&cfg.DevMem, "dev-mem", "d", "", "Read memory from device FILE")
	fs.BoolVarP(&cfg.Help, "help", "h", false, "Display this help text and exit")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Less verbose output")
	fs.VarP(tv, "type", "t", "Only display the entries of given type")
	fs.BoolVarP(&cfg.Dump, "dump", "u", false, "Do not decode the entries")
	fs.BoolVarP(&cfg.Version, "version", "V", false, "Display the version and exit")

	canonical, err := newOptTable(fs).canonicalize(args)
	if err != nil {
		return nil, err
	}

	if err := fs.Parse(canonical); err != nil {
		if tv.err != nil {
			return nil, tv.err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	cfg.DevMemSet = fs.Changed("dev-mem")
	cfg.Args = fs.Args()
	return cfg, nil
}
