package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFiller(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty line", "", true},
		{"pure hesitation", "ну да вот ага", true},
		{"too few content words", "угу понятно", true},
		{"normal sentence", "Работаю над проектом уже третий месяц", false},
		{"hesitations embedded but enough content", "ну я вот думаю проект готов", false},
		{"hesitation ratio above threshold", "ну ну ну ну ну ну ну ну проект почти готов", true},
		{"multi-word hesitation only", "как бы в общем да", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.IsFiller(tt.text))
		})
	}
}

func TestIsFillerMonotonic(t *testing.T) {
	rules := DefaultRules()

	// No content words at all: always filler.
	assert.True(t, rules.IsFiller("эээ... 123 !!!"))

	// Three content words and a hesitation share well under the
	// threshold: never filler.
	assert.False(t, rules.IsFiller("проект работает отлично"))
}

func TestRemoveHesitations(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"single tokens", "ну привет вот тебе", "привет тебе"},
		{"multi-word phrases", "как бы привет в общем пока", "привет пока"},
		{"case-insensitive", "Ну Привет ВОТ", "Привет"},
		{"punctuation attached", "Ну, привет!", "привет!"},
		{"nothing to remove", "чистый текст без лишнего", "чистый текст без лишнего"},
		{"collapses whitespace", "слово   ну    слово", "слово слово"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.RemoveHesitations(tt.text))
		})
	}
}

func TestCleanText(t *testing.T) {
	rules := DefaultRules()

	got := rules.CleanText("[00:01] Speaker A: ну это важный ответ")
	assert.Equal(t, "это важный ответ", got)
}

func TestCleanTextStripsMarkersMidLine(t *testing.T) {
	rules := DefaultRules()

	got := rules.CleanText("начало [12:34] Speaker BB: конец")
	assert.Equal(t, "начало конец", got)
}
