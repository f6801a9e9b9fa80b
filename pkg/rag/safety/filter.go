package safety

import "strings"

// Filter rejects queries touching restricted topics before any retrieval
// happens. Matching is plain substring containment on the lower-cased query,
// consistent with keyword classification.
type Filter struct {
	denylist []string
}

func NewFilter(denylist []string) *Filter {
	lowered := make([]string, len(denylist))
	for i, term := range denylist {
		lowered[i] = strings.ToLower(term)
	}
	return &Filter{denylist: lowered}
}

// Blocked reports whether the query contains any restricted term.
func (f *Filter) Blocked(query string) bool {
	lowered := strings.ToLower(query)
	for _, term := range f.denylist {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}
