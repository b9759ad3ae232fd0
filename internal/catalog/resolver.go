package catalog

import (
	"strings"

	"github.com/OmarHosamCodes/noocommerce/internal/domain"
)

// Resolve finds the concrete variant matching the current selection. A
// variant matches when, for every selected axis, its recorded option equals
// the selected value under case-insensitive comparison; unselected axes are
// not constraints. The first match in catalog order wins. The second return
// reports whether another variant also matched, so callers can flag an
// inconsistent catalog; the winner is unaffected.
//
// An empty selection resolves only the degenerate catalog of exactly one
// variant with no attribute choices.
func Resolve(variants []domain.Variant, sel Selection) (*domain.Variant, bool) {
	if sel.Len() == 0 {
		if len(variants) == 1 && len(variants[0].Attributes) == 0 {
			return &variants[0], false
		}
		return nil, false
	}

	var match *domain.Variant
	ambiguous := false
	for i := range variants {
		if !matches(variants[i], sel) {
			continue
		}
		if match == nil {
			match = &variants[i]
			continue
		}
		ambiguous = true
		break
	}
	return match, ambiguous
}

func matches(v domain.Variant, sel Selection) bool {
	for name, want := range sel {
		got, ok := v.Option(name)
		if !ok || !strings.EqualFold(got, want) {
			return false
		}
	}
	return true
}
