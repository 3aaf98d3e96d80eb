// Package textstat provides word-count and readability heuristics shared
// by the chapter pipeline and the generation client.
package textstat

import (
	"math"
	"strings"
)

// CountWords counts whitespace-delimited non-empty tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ReadingTime estimates reading time in minutes at 200 words per minute.
func ReadingTime(wordCount int) int {
	return int(math.Ceil(float64(wordCount) / 200))
}

// ReadabilityScore approximates the Flesch Reading Ease score.
// The result is clamped to [0, 100]; empty input scores 0.
func ReadabilityScore(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	sentences := 0
	for _, s := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	words := CountWords(text)
	if sentences == 0 || words == 0 {
		return 0
	}

	syllables := countSyllables(text)

	avgSentenceLength := float64(words) / float64(sentences)
	avgSyllablesPerWord := float64(syllables) / float64(words)

	score := 206.835 - (1.015 * avgSentenceLength) - (84.6 * avgSyllablesPerWord)

	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// countSyllables estimates syllables by collapsing vowel-group clusters
// in the lowercased alphabetic text. A trailing silent vowel group is
// dropped; the estimate never goes below 1.
func countSyllables(text string) int {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	letters := b.String()
	if letters == "" {
		return 1
	}

	count := 0
	inVowelGroup := false
	for _, r := range letters {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !inVowelGroup {
			count++
		}
		inVowelGroup = isVowel
	}
	// drop a trailing silent vowel group
	if inVowelGroup && count > 1 {
		count--
	}
	if count < 1 {
		return 1
	}
	return count
}
