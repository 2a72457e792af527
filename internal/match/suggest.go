package match

import (
	"sort"
)

// Defaults for Suggest.
const (
	DefaultMinScore       = 0.5
	DefaultMaxSuggestions = 3
)

// Candidate is one column that nearly matches a label.
type Candidate struct {
	Column int
	Name   string
	Score  float64
}

// CandidateList is ordered by descending score, then column index.
type CandidateList []Candidate

// Names returns the candidate column names in order.
func (l CandidateList) Names() []string {
	out := make([]string, len(l))
	for i, c := range l {
		out[i] = c.Name
	}

	return out
}

// Suggest ranks columns by similarity to label and returns at most limit
// candidates scoring at least minScore. It never returns an exact match;
// use FindColumn for binding.
func Suggest(columns []string, label string, minScore float64, limit int) CandidateList {
	want := NormalizeIdent(label)
	if want == "" || limit <= 0 {
		return nil
	}

	var out CandidateList

	for i, c := range columns {
		if NormalizeHeader(c) == NormalizeHeader(label) {
			continue
		}

		score := LevenshteinNormalized(NormalizeIdent(c), want)
		if score < minScore {
			continue
		}

		out = append(out, Candidate{Column: i, Name: c, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out
}
