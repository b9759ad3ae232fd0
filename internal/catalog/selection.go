package catalog

import "strings"

// Selection holds a user's partial or complete attribute choices for one
// configurable product. Keys are attribute names, canonicalized to lower
// case so that selecting "color" and "Color" hits the same axis. Values keep
// their submitted case; comparison is case-insensitive at resolve time.
type Selection map[string]string

func NewSelection() Selection { return Selection{} }

// SelectionFrom builds a Selection from raw client input, applying the same
// per-axis canonicalization as Select.
func SelectionFrom(raw map[string]string) Selection {
	s := NewSelection()
	for name, value := range raw {
		s.Select(name, value)
	}
	return s
}

// Select records a choice for one attribute axis, overwriting any prior
// choice for that axis (last write wins). No validation against the catalog
// happens here; impossible combinations simply stay unresolved.
func (s Selection) Select(name, value string) {
	s[strings.ToLower(strings.TrimSpace(name))] = value
}

// Get returns the chosen value for an attribute, case-insensitive on the
// attribute name.
func (s Selection) Get(name string) (string, bool) {
	v, ok := s[strings.ToLower(strings.TrimSpace(name))]
	return v, ok
}

func (s Selection) Len() int { return len(s) }
