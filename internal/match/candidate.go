package match

import (
	"sort"
)

// Suggestion thresholds.
const (
	// DefaultMinScore is the minimum similarity for a name to be suggested.
	DefaultMinScore = 0.6
	// DefaultMaxSuggestions caps the number of suggestions per diagnostic.
	DefaultMaxSuggestions = 3
)

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name string
	// Normalized is Name after NormalizeName.
	Normalized string
	// Score is the normalized Levenshtein similarity (0-1).
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every name against target, best first.
func Rank(target string, names []string) CandidateList {
	candidates := make(CandidateList, 0, len(names))
	for _, name := range names {
		candidates = append(candidates, Candidate{
			Name:       name,
			Normalized: NormalizeName(name),
			Score:      Score(name, target),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to n names similar to target, best first. Names equal
// to target are skipped.
func Suggest(target string, names []string, minScore float64, n int) []string {
	var out []string

	for _, c := range Rank(target, names).AboveThreshold(minScore).Top(n + 1) {
		if c.Name == target || len(out) == n {
			continue
		}

		out = append(out, c.Name)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
