package ballot

import "award-voting/internal/domain/category"

// IsComplete reports whether the ballot carries a non-empty selection for
// every category in the current list. It deliberately does not check that
// the value still belongs to the category's alternative set; a stale value
// is stored as-is and dropped later during tallying.
func IsComplete(categories []category.Category, b Ballot) bool {
	for _, cat := range categories {
		if b[cat.ID] == "" {
			return false
		}
	}
	return true
}
