package lib

import (
	"strings"
	"unicode"
)

// FuzzyScore rates how well query matches text on a 0-100 scale.
// Exact substring matches score 100; otherwise the best windowed
// Levenshtein ratio between the query and text is used, so short
// misspellings ("fone" for "Phone Case") still rank high.
func FuzzyScore(query, text string) int {
	q := normalizeForMatch(query)
	t := normalizeForMatch(text)

	if q == "" || t == "" {
		return 0
	}

	if strings.Contains(t, q) {
		return 100
	}

	best := levenshteinRatio(q, t)

	// Slide a query-sized window over the text so a good match on one
	// word is not drowned out by the rest of a long title
	qLen := len([]rune(q))
	tRunes := []rune(t)
	if len(tRunes) > qLen {
		for i := 0; i+qLen <= len(tRunes); i++ {
			if r := levenshteinRatio(q, string(tRunes[i:i+qLen])); r > best {
				best = r
			}
		}
	}

	return best
}

func normalizeForMatch(s string) string {
	var b strings.Builder
	lastSpace := true

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
		} else if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// levenshteinRatio returns the edit-distance similarity of a and b
// scaled to 0-100.
func levenshteinRatio(a, b string) int {
	ar := []rune(a)
	br := []rune(b)

	longest := len(ar)
	if len(br) > longest {
		longest = len(br)
	}
	if longest == 0 {
		return 100
	}

	dist := levenshtein(ar, br)
	return (longest - dist) * 100 / longest
}

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

			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
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
