package stops

import "strings"

// containmentBonus rewards one string containing the other, so partial
// mentions ("gomti") still score against the full name ("gomti nagar").
const containmentBonus = 0.2

// Similarity returns a normalized edit-distance ratio between a and b in
// [0, 1]. Inputs are expected in folded form.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	ar, br := []rune(a), []rune(b)
	longest := len(ar)
	if len(br) > longest {
		longest = len(br)
	}
	score := 1 - float64(levenshtein(ar, br))/float64(longest)
	if strings.Contains(a, b) || strings.Contains(b, a) {
		score += containmentBonus
	}
	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}

// levenshtein computes the edit distance between two rune slices with a
// two-row dynamic programming table.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// BestMatch scans candidates for the highest Similarity to text. It returns
// false when the best score is below threshold or when another candidate
// ties it: an ambiguous match is treated as no match.
func BestMatch(text string, candidates []string, threshold float64) (string, float64, bool) {
	best := ""
	bestScore := 0.0
	tied := false
	for _, c := range candidates {
		s := Similarity(text, c)
		switch {
		case s > bestScore:
			best, bestScore, tied = c, s, false
		case s == bestScore && c != best:
			tied = true
		}
	}
	if best == "" || bestScore < threshold || tied {
		return "", bestScore, false
	}
	return best, bestScore, true
}
