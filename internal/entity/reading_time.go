package entity

import (
	"math"
	"unicode"
)

const WordsPerMinute = 200

// WordCount counts maximal runs of letters, digits and underscores.
func WordCount(s string) int {
	count := 0
	inWord := false
	for _, r := range s {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			if !inWord {
				count++
				inWord = true
			}
			continue
		}
		inWord = false
	}
	return count
}

// ReadingTime returns max(1, round(words/200)) minutes.
func ReadingTime(content string) int {
	minutes := int(math.Round(float64(WordCount(content)) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}
