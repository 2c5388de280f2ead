// Package dmitype builds the SMBIOS type filter selected with --type.
//
// An argument is either one of the keyword groups (bios, system, memory, ...)
// or a list of numeric types written in decimal, 0x-prefixed hexadecimal or
// 0-prefixed octal and separated by commas or spaces. Successive calls to
// Build accumulate, so repeated --type options select the union of their
// types.
package dmitype

// Build adds the types named by token to the existing selection and
// returns the resulting filter. An absent selection starts from an empty
// filter. On error the zero Filter is returned and existing is unchanged.
func Build(existing Selection, token string) (Filter, error) {
	f, _ := existing.Get()

	if kw, ok := Lookup(token); ok {
		for _, t := range kw.Types {
			f.Add(t)
		}
		return f, nil
	}

	sc := newScanner(token)
	for !sc.done() {
		t, err := sc.next()
		if err != nil {
			return Filter{}, err
		}
		f.Add(t)
	}
	return f, nil
}
