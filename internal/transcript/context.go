package transcript

import "strings"

// Heuristics control which non-primary lines qualify as context for a
// primary-speaker turn. The constants are empirical; keep them
// configurable rather than baked in.
type Heuristics struct {
	// Lookback is how many segments before a primary turn are scanned.
	Lookback int
	// ShortLineTokens is the token count below which a line counts as a
	// short setup statement.
	ShortLineTokens int
	// CueWords mark question/prompt-like lines by substring containment
	// on the lowercased text. Language-specific.
	CueWords []string
}

// DefaultHeuristics returns the tuning used for Russian interview
// transcripts: look back 2 segments, short lines under 20 tokens.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		Lookback:        2,
		ShortLineTokens: 20,
		CueWords:        []string{"вопрос", "скажи", "расскажи", "как", "что", "почему", "когда"},
	}
}

// ContextLine is one qualifying non-primary utterance preceding a
// primary-speaker turn.
type ContextLine struct {
	Speaker   string
	Text      string
	Timestamp string
}

// ContextualTurn pairs one primary-speaker segment with the qualifying
// context lines found in its lookback window, oldest first.
type ContextualTurn struct {
	Timestamp   string
	Context     []ContextLine
	PrimaryText string
}

// ExtractTurns emits one ContextualTurn per primary-speaker segment, in
// transcript order. The context window never reaches past the lookback
// bound and never looks ahead of the current segment. No primary
// segments yields an empty slice.
func ExtractTurns(segments []Segment, primary string, h Heuristics) []ContextualTurn {
	var turns []ContextualTurn

	for i, seg := range segments {
		if seg.Speaker != primary {
			continue
		}

		var context []ContextLine
		start := i - h.Lookback
		if start < 0 {
			start = 0
		}
		for j := start; j < i; j++ {
			prev := segments[j]
			if prev.Speaker == primary {
				continue
			}
			if h.looksLikeContext(prev.Text) {
				context = append(context, ContextLine{
					Speaker:   prev.Speaker,
					Text:      prev.Text,
					Timestamp: prev.Timestamp,
				})
			}
		}

		turns = append(turns, ContextualTurn{
			Timestamp:   seg.Timestamp,
			Context:     context,
			PrimaryText: seg.Text,
		})
	}

	return turns
}

// looksLikeContext reports whether a non-primary line is worth keeping
// next to the answer it precedes: an explicit question, a short setup
// statement, or a line carrying a cue word.
func (h Heuristics) looksLikeContext(text string) bool {
	if strings.Contains(text, "?") {
		return true
	}
	if len(strings.Fields(text)) < h.ShortLineTokens {
		return true
	}
	return h.HasCueWord(text)
}

// HasCueWord reports whether the lowercased text contains any configured
// cue word.
func (h Heuristics) HasCueWord(text string) bool {
	lower := strings.ToLower(text)
	for _, cue := range h.CueWords {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}
