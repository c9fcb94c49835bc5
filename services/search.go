package services

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/Ramyash8/hotel-reservation-system2/models"
)

// minSuggestionSimilarity is how close a destination must be to the query
// before it is offered as a suggestion
const minSuggestionSimilarity = 0.6

// normalizeInput lowercases and strips accents
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity is 1 minus the edit distance over the longer length
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

// matchesDestination reports whether the hotel name or location contains the
// query, ignoring case and accents
func matchesDestination(hotel models.Hotel, query string) bool {
	return strings.Contains(normalizeInput(hotel.Name), query) ||
		strings.Contains(normalizeInput(hotel.Location), query)
}

// suggestDestination picks the known place or hotel name closest to query.
// It returns "" when nothing is similar enough.
func suggestDestination(hotels []models.Hotel, query string) string {
	display := make(map[string]string)
	for _, h := range hotels {
		for _, part := range strings.Split(h.Location, ",") {
			if part = strings.TrimSpace(part); part != "" {
				display[normalizeInput(part)] = part
			}
		}
		if name := strings.TrimSpace(h.Name); name != "" {
			display[normalizeInput(name)] = name
		}
	}
	if len(display) == 0 || query == "" {
		return ""
	}

	keywords := make([]string, 0, len(display))
	for k := range display {
		keywords = append(keywords, k)
	}
	best := createMatcher(keywords).Closest(query)
	if best == "" || calculateSimilarity(query, best) < minSuggestionSimilarity {
		return ""
	}
	return display[best]
}
