package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

func TestBuildPrompt(t *testing.T) {
	rules := transcript.DefaultRules()
	raw := "[00:01] Speaker A: вопрос\n[00:05] Speaker B: ответ"

	prompt := BuildPrompt(rules, "B", raw)

	assert.Contains(t, prompt, "the speaker exactly matching B")
	assert.Contains(t, prompt, raw)
	assert.Contains(t, prompt, "rule set v1")
	assert.Contains(t, prompt, "fewer than 3 content words")
	assert.Contains(t, prompt, "More than 70%")
	for _, tok := range rules.HesitationTokens {
		assert.Contains(t, prompt, "«"+tok+"»")
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	rules := transcript.DefaultRules()
	raw := "[00:01] Speaker A: текст"

	assert.Equal(t, BuildPrompt(rules, "A", raw), BuildPrompt(rules, "A", raw))
}

func TestBuildPromptCustomRules(t *testing.T) {
	rules := transcript.Rules{
		Version:            "v2",
		HesitationTokens:   []string{"um", "uh"},
		MinContentWords:    5,
		MaxHesitationRatio: 0.5,
	}

	prompt := BuildPrompt(rules, "EXPERT", "transcript body")

	assert.Contains(t, prompt, "rule set v2")
	assert.Contains(t, prompt, "fewer than 5 content words")
	assert.Contains(t, prompt, "More than 50%")
	assert.Contains(t, prompt, "«um», «uh»")
	assert.NotContains(t, prompt, "«ну»")
}
