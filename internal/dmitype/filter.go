package dmitype

import (
	"strconv"
	"strings"
)

// NumTypes is the size of the SMBIOS type identifier space
const NumTypes = 256

// Filter is a membership table over all SMBIOS type identifiers
type Filter struct {
	selected [NumTypes]bool
}

// Has reports whether type t is selected
func (f Filter) Has(t uint8) bool {
	return f.selected[t]
}

// Add marks type t as selected
func (f *Filter) Add(t uint8) {
	f.selected[t] = true
}

// Len returns the number of selected types
func (f Filter) Len() int {
	n := 0
	for _, ok := range f.selected {
		if ok {
			n++
		}
	}
	return n
}

// Types returns the selected types in ascending order
func (f Filter) Types() []uint8 {
	types := make([]uint8, 0, f.Len())
	for t, ok := range f.selected {
		if ok {
			types = append(types, uint8(t))
		}
	}
	return types
}

// String returns the selected types as a comma separated list
func (f Filter) String() string {
	var b strings.Builder
	for i, t := range f.Types() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(t)))
	}
	return b.String()
}

// Selection is an optional Filter. The zero value places no restriction
// on types; once a filter is present it only grows.
type Selection struct {
	filter Filter
	valid  bool
}

// Some wraps f in a present Selection
func Some(f Filter) Selection {
	return Selection{filter: f, valid: true}
}

// IsSet reports whether a filter is present
func (s Selection) IsSet() bool {
	return s.valid
}

// Get returns the filter and whether it is present
func (s Selection) Get() (Filter, bool) {
	return s.filter, s.valid
}

// Allows reports whether entries of type t should be processed
func (s Selection) Allows(t uint8) bool {
	if !s.valid {
		return true
	}
	return s.filter.Has(t)
}

// String returns "all" for an absent selection, else the selected types
func (s Selection) String() string {
	if !s.valid {
		return "all"
	}
	return s.filter.String()
}
