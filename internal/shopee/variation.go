package shopee

import (
	"fmt"
	"strings"

	"github.com/minhvu-dev/shopee-track/internal/models"
)

// ResolveOptionIndex maps a human-entered option value to its index within
// the first axis whose name matches axisHint. Comparison is case-insensitive
// and whitespace-trimmed; a name or option matches when the normalized
// strings are equal or either contains the other. The looseness tolerates
// marketplace label drift ("Color" vs "Colour / Color") but also lets short
// labels collide ("S" matches "XS"); first structural match wins at both
// levels, with no preference for exact over partial.
//
// Returns -1 when the axis never matched or no option in it matched.
func ResolveOptionIndex(rec *models.ProductRecord, axisHint, optionValue string) int {
	hint := normalize(axisHint)
	value := normalize(optionValue)
	if hint == "" || value == "" {
		return -1
	}

	for _, axis := range rec.TierVariations {
		if !looseMatch(normalize(axis.Name), hint) {
			continue
		}
		// First matching axis only.
		for j, opt := range axis.Options {
			if looseMatch(normalize(opt), value) {
				return j
			}
		}
		return -1
	}
	return -1
}

// ResolveModelIndex resolves up to two variation labels to a model index.
// Missing or unmatched labels degrade to the base model (index 0) instead of
// failing the price check, so a label that matches nothing yields the base
// SKU's price.
//
// A model reached during the scan whose tier index length differs from the
// number of variation axes is reported as an error, never skipped.
func ResolveModelIndex(rec *models.ProductRecord, var1, var2 string) (int, error) {
	if strings.TrimSpace(var1) == "" && strings.TrimSpace(var2) == "" {
		return 0, nil
	}
	if len(rec.TierVariations) == 0 {
		return 0, nil
	}

	var1Idx, var2Idx := -1, -1
	if strings.TrimSpace(var1) != "" {
		var1Idx = ResolveOptionIndex(rec, rec.TierVariations[0].Name, var1)
	}
	if strings.TrimSpace(var2) != "" && len(rec.TierVariations) > 1 {
		var2Idx = ResolveOptionIndex(rec, rec.TierVariations[1].Name, var2)
	}

	// An unresolved first label means no model scan at all.
	if var1Idx < 0 {
		return 0, nil
	}

	for i, m := range rec.Models {
		if len(m.TierIndex) != len(rec.TierVariations) {
			return 0, fmt.Errorf("%w: model %d has %d coordinates, record has %d axes",
				ErrTierIndexMismatch, i, len(m.TierIndex), len(rec.TierVariations))
		}
		if var2Idx >= 0 {
			if m.TierIndex[0] == var1Idx && m.TierIndex[1] == var2Idx {
				return i, nil
			}
			continue
		}
		if m.TierIndex[0] == var1Idx {
			return i, nil
		}
	}

	return 0, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func looseMatch(a, b string) bool {
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}
