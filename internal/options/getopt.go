package options

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// optSpec is one registered option as seen by the getopt pass
type optSpec struct {
	name     string
	takesArg bool
}

// optTable indexes the options of a flag set by long name and shorthand
type optTable struct {
	long  []optSpec
	short map[byte]optSpec
}

func newOptTable(fs *pflag.FlagSet) *optTable {
	t := &optTable{short: make(map[byte]optSpec)}
	fs.VisitAll(func(f *pflag.Flag) {
		o := optSpec{name: f.Name, takesArg: f.NoOptDefVal == ""}
		t.long = append(t.long, o)
		if f.Shorthand != "" {
			t.short[f.Shorthand[0]] = o
		}
	})
	return t
}

// matchLong resolves a long option name, accepting any unambiguous prefix
func (t *optTable) matchLong(name string) (optSpec, error) {
	if name == "" {
		return optSpec{}, fmt.Errorf("%w: --", ErrUnknownOption)
	}

	var matches []optSpec
	for _, o := range t.long {
		if o.name == name {
			return o, nil
		}
		if strings.HasPrefix(o.name, name) {
			matches = append(matches, o)
		}
	}

	switch len(matches) {
	case 0:
		return optSpec{}, fmt.Errorf("%w: --%s", ErrUnknownOption, name)
	case 1:
		return matches[0], nil
	}
	names := make([]string, len(matches))
	for i, o := range matches {
		names[i] = "--" + o.name
	}
	return optSpec{}, fmt.Errorf("%w: --%s (%s)", ErrAmbiguousOption, name, strings.Join(names, ", "))
}

// canonicalize rewrites args with getopt_long rules into the form
// "--name" or "--name=value", which pflag parses without interpretation.
// Short option arguments keep everything after the letter, so "-t=5"
// passes "=5". Operands are copied unchanged and "--" ends option
// processing.
func (t *optTable) canonicalize(args []string) ([]string, error) {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			return append(out, args[i:]...), nil

		case strings.HasPrefix(arg, "--"):
			name, value, hasValue := strings.Cut(arg[2:], "=")
			o, err := t.matchLong(name)
			if err != nil {
				return nil, err
			}
			if !o.takesArg {
				if hasValue {
					return nil, fmt.Errorf("%w: --%s", ErrUnexpectedArgument, o.name)
				}
				out = append(out, "--"+o.name)
				continue
			}
			if !hasValue {
				if i+1 >= len(args) {
					return nil, fmt.Errorf("%w: --%s", ErrMissingArgument, o.name)
				}
				i++
				value = args[i]
			}
			out = append(out, "--"+o.name+"="+value)

		case len(arg) > 1 && arg[0] == '-':
			bundle := arg[1:]
			for j := 0; j < len(bundle); j++ {
				o, ok := t.short[bundle[j]]
				if !ok {
					return nil, fmt.Errorf("%w: %q in %s", ErrUnknownOption, bundle[j], arg)
				}
				if !o.takesArg {
					out = append(out, "--"+o.name)
					continue
				}

				value := bundle[j+1:]
				if value == "" {
					if i+1 >= len(args) {
						return nil, fmt.Errorf("%w: -%c", ErrMissingArgument, bundle[j])
					}
					i++
					value = args[i]
				}
				out = append(out, "--"+o.name+"="+value)
				break
			}

		default:
			out = append(out, arg)
		}
	}
	return out, nil
}
