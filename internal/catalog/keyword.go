package catalog

import "strings"

// KeywordSearch keeps records whose name contains every query token
// (case-insensitive, AND semantics). Input order is preserved; an empty
// query keeps everything.
func KeywordSearch(records []Record, query string) []Record {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return records
	}

	out := make([]Record, 0, len(records))
	for _, r := range records {
		name := Fold(r.Name)
		ok := true
		for _, tok := range tokens {
			if !strings.Contains(name, tok) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, r)
		}
	}
	return out
}

func tokenize(q string) []string {
	parts := strings.Fields(q)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, Fold(p))
	}
	return out
}
