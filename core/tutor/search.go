package tutor

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/edumind/core"
)

// minSimilarity is the difflib ratio above which a misspelled query still matches.
const minSimilarity = .8

type SearchResult struct {
	Personas []Persona `json:"personas"`
	Subjects []Subject `json:"subjects"`
}

// Search filters Personas (by name or subject) and Subjects (by name) matching query.
// Matching is case-insensitive and tolerates typos. An empty query matches everything.
func Search(query string) SearchResult {
	q := core.CleanString(query, true /* lower */)
	res := SearchResult{Personas: []Persona{}, Subjects: []Subject{}}

	for _, p := range Personas {
		if q == "" || matches(q, p.Name) || matches(q, p.Subject) {
			res.Personas = append(res.Personas, p)
		}
	}
	for _, s := range Subjects {
		if q == "" || matches(q, s.Name) {
			res.Subjects = append(res.Subjects, s)
		}
	}
	return res
}

func matches(query, value string) bool {
	value = strings.ToLower(value)
	if strings.Contains(value, query) {
		return true
	}
	if similarity(query, value) >= minSimilarity {
		return true
	}
	for _, word := range strings.Fields(value) {
		if similarity(query, strings.Trim(word, ".")) >= minSimilarity {
			return true
		}
	}
	return false
}

func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}
