package match

// MinSuggestionScore is the minimum normalized similarity for a candidate
// to be offered as a "did you mean" suggestion.
const MinSuggestionScore = 0.5

// Closest returns the candidate most similar to name, or "" when no
// candidate scores at least MinSuggestionScore. Ties keep the earliest
// candidate so the result is deterministic for a fixed candidate order.
func Closest(name string, candidates []string) string {
	best := ""
	bestScore := 0.0

	for _, c := range candidates {
		score := LevenshteinNormalized(name, c)
		if score > bestScore {
			best = c
			bestScore = score
		}
	}

	if bestScore < MinSuggestionScore {
		return ""
	}

	return best
}
