package dmitype

import "strings"

// Keyword is a named group of SMBIOS types accepted by --type
type Keyword struct {
	Name  string
	Types []uint8
}

var keywords = []Keyword{
	{Name: "bios", Types: []uint8{0, 13}},
	{Name: "system", Types: []uint8{1, 12, 15, 23, 32}},
	{Name: "baseboard", Types: []uint8{2, 10}},
	{Name: "chassis", Types: []uint8{3}},
	{Name: "processor", Types: []uint8{4}},
	{Name: "memory", Types: []uint8{5, 6, 16, 17}},
	{Name: "cache", Types: []uint8{7}},
	{Name: "connector", Types: []uint8{8}},
	{Name: "slot", Types: []uint8{9}},
}

// Keywords returns a copy of the keyword table in its canonical order
func Keywords() []Keyword {
	out := make([]Keyword, len(keywords))
	for i, kw := range keywords {
		out[i] = Keyword{Name: kw.Name, Types: append([]uint8(nil), kw.Types...)}
	}
	return out
}

// Lookup finds a keyword by case-insensitive name
func Lookup(name string) (Keyword, bool) {
	for _, kw := range keywords {
		if strings.EqualFold(name, kw.Name) {
			return Keyword{Name: kw.Name, Types: append([]uint8(nil), kw.Types...)}, true
		}
	}
	return Keyword{}, false
}

// KeywordFor returns the name of the keyword group containing type t,
// or "" if no group covers it
func KeywordFor(t uint8) string {
	for _, kw := range keywords {
		for _, kt := range kw.Types {
			if kt == t {
				return kw.Name
			}
		}
	}
	return ""
}
