// internal/domain/promo/service.go
package promo

import (
	"strings"
)

// Registry is the read-only promo list keyed case-insensitively by code
type Registry struct {
	promos []Promo
	byCode map[string]int
}

// NewRegistry creates a registry. Percentages are clamped to 0..100 and
// codes that differ only by case keep the first entry.
func NewRegistry(promos []Promo) *Registry {
	r := &Registry{
		promos: make([]Promo, 0, len(promos)),
		byCode: make(map[string]int, len(promos)),
	}

	for _, p := range promos {
		key := normalize(p.Code)
		if key == "" {
			continue
		}
		if _, exists := r.byCode[key]; exists {
			continue
		}

		p.DiscountPct = min(max(p.DiscountPct, 0), 100)
		r.byCode[key] = len(r.promos)
		r.promos = append(r.promos, p)
	}

	return r
}

// List returns all promos in insertion order
func (r *Registry) List() []Promo {
	out := make([]Promo, len(r.promos))
	copy(out, r.promos)
	return out
}

// Lookup finds a promo by code, ignoring case. A miss is not an error.
func (r *Registry) Lookup(code string) (Promo, bool) {
	idx, ok := r.byCode[normalize(code)]
	if !ok {
		return Promo{}, false
	}
	return r.promos[idx], true
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
