package match

// DefaultSuggestThreshold is the minimum normalized similarity for a
// known name to be offered as a replacement.
const DefaultSuggestThreshold = 0.6

// Suggest returns the known names closest to word, best first.
// Only names scoring at least minScore are returned, and only those tied
// for the best score. The order of known is kept among ties.
func Suggest(word string, known []string, minScore float64) []string {
	var (
		best      []string
		bestScore = minScore
	)

	for _, candidate := range known {
		score := NormalizedLevenshteinScore(word, candidate)

		switch {
		case score > bestScore:
			bestScore = score
			best = []string{candidate}
		case score == bestScore:
			best = append(best, candidate)
		}
	}

	return best
}
