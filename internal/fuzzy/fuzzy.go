// Package fuzzy suggests the closest declared activator when a parse run
// stops on an unrecognized token. The parser uses it to build the
// "did you mean" part of trailing-input errors.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher scores candidate activators against a mistyped token.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher with the given maximum edit distance.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // don't suggest for one-character inputs
	}
}

// Match is a scored candidate.
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// FindBest returns the best-matching candidate, or "" when nothing is close.
// Dash prefixes are ignored while comparing so "--verbos" is measured
// against "verbose", but the returned value keeps its original form.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within maxDistance, best first.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	bare := strings.ToLower(strings.TrimLeft(input, "-"))
	if len(bare) < m.minLength {
		return nil
	}

	var matches []Match
	for _, candidate := range candidates {
		bareCand := strings.ToLower(strings.TrimLeft(candidate, "-"))
		if bare == bareCand {
			continue // exact match is not a typo
		}

		distance := m.distance(bare, bareCand)
		if distance > m.maxDistance {
			continue
		}
		matches = append(matches, Match{
			Value:    candidate,
			Distance: distance,
			Score:    m.score(bare, bareCand, distance),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// score blends edit distance with a shared-prefix bonus so "verbos" prefers
// "verbose" over "version" even at equal distance.
func (m *Matcher) score(input, candidate string, distance int) float64 {
	maxLen := len(input)
	if len(candidate) > maxLen {
		maxLen = len(candidate)
	}
	if maxLen == 0 {
		return 1.0
	}

	editScore := 1.0 - float64(distance)/float64(maxLen)

	prefix := 0
	limit := len(input)
	if len(candidate) < limit {
		limit = len(candidate)
	}
	for prefix < limit && input[prefix] == candidate[prefix] {
		prefix++
	}
	prefixBonus := 0.0
	if limit > 0 {
		prefixBonus = float64(prefix) / float64(limit) * 0.3
	}

	score := editScore + prefixBonus
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// distance is a two-row Levenshtein with early termination once every cell
// in a row exceeds maxDistance.
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	diff := len(a) - len(b)
	if diff < 0 {
		diff = -diff
	}
	if diff > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			d := prev[j-1] + cost // substitution
			if del := prev[j] + 1; del < d {
				d = del
			}
			if ins := curr[j-1] + 1; ins < d {
				d = ins
			}
			curr[j] = d
			if d < rowMin {
				rowMin = d
			}
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

// FindBestActivator finds the closest declared activator for a mistyped
// token using the default matcher settings.
func FindBestActivator(input string, activators []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, activators)
}

// FindSuggestions returns up to maxSuggestions close activators, best first.
func FindSuggestions(input string, candidates []string, maxDistance, maxSuggestions int) []string {
	matches := NewMatcher(maxDistance).FindMatches(input, candidates)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	suggestions := make([]string, 0, len(matches))
	for _, match := range matches {
		suggestions = append(suggestions, match.Value)
	}
	return suggestions
}
