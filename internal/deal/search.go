package deal

import "strings"

// Search narrows a deal list by free-text query and category. The query
// matches case-insensitively as a substring of the title, description
// or any tag; the category must match exactly when set. Empty arguments
// match everything. The input slice is never mutated.
func Search(deals []Deal, query, category string) []Deal {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]Deal, 0, len(deals))
	for _, d := range deals {
		if category != "" && d.Category != category {
			continue
		}
		if query != "" && !matchesQuery(d, query) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func matchesQuery(d Deal, query string) bool {
	if strings.Contains(strings.ToLower(d.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(d.Description), query) {
		return true
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
