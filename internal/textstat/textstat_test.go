package textstat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "simple sentence", text: "Once upon a time", want: 4},
		{name: "empty", text: "", want: 0},
		{name: "whitespace only", text: "  \t\n  ", want: 0},
		{name: "extra whitespace", text: "  one   two\nthree\t", want: 3},
		{name: "single word", text: "word", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWords(tt.text))
		})
	}
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 0, ReadingTime(0))
	assert.Equal(t, 1, ReadingTime(1))
	assert.Equal(t, 1, ReadingTime(200))
	assert.Equal(t, 2, ReadingTime(201))
	assert.Equal(t, 5, ReadingTime(1000))
}

func TestReadabilityScoreBounds(t *testing.T) {
	inputs := []string{
		"The cat sat on the mat.",
		"It was a dark and stormy night. The rain fell in torrents! Who could say why?",
		strings.Repeat("Incomprehensibility notwithstanding, antidisestablishmentarianism persists. ", 20),
		"Go. Run. Hide.",
		"no punctuation at all just words and more words",
	}

	for _, text := range inputs {
		score := ReadabilityScore(text)
		assert.GreaterOrEqual(t, score, 0, "input %q", text)
		assert.LessOrEqual(t, score, 100, "input %q", text)
	}
}

func TestReadabilityScoreEmpty(t *testing.T) {
	assert.Equal(t, 0, ReadabilityScore(""))
	assert.Equal(t, 0, ReadabilityScore("   \n "))
}

func TestReadabilityScoreSimpleTextScoresHigh(t *testing.T) {
	score := ReadabilityScore("The dog ran. The cat sat. The sun shone.")
	assert.Greater(t, score, 70)
}
