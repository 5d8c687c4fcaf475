package filter

import "github.com/kamusis/catalog-cli/internal/catalog"

// Normalize returns the canonical case-folded form used for every stored
// and compared filter value. It is the same rule the catalog uses for
// validation and keyword search.
func Normalize(s string) string {
	return catalog.Fold(s)
}
