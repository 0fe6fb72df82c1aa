package transcript

import (
	"regexp"
	"strings"
	"unicode"
)

// Rules is the filler/hesitation contract. The same structure drives the
// local fallback assembly and the prompt sent to the remote cleanup
// collaborator, so both paths apply identical rules. Bump Version when
// the vocabulary or the thresholds change.
type Rules struct {
	Version string
	// HesitationTokens are removed wherever they appear. Entries may be
	// multi-word phrases ("как бы").
	HesitationTokens []string
	// MinContentWords is the minimum number of alphabetic non-hesitation
	// tokens a line needs to escape the filler classification.
	MinContentWords int
	// MaxHesitationRatio is the highest tolerated share of hesitation
	// tokens in a line.
	MaxHesitationRatio float64
}

// DefaultRules returns the v1 Russian rule set.
func DefaultRules() Rules {
	return Rules{
		Version: "v1",
		HesitationTokens: []string{
			"эээ", "эм", "ну", "угу", "да", "ага", "вот",
			"как бы", "в общем", "короче", "ладно",
		},
		MinContentWords:    3,
		MaxHesitationRatio: 0.7,
	}
}

var (
	timestampMarker = regexp.MustCompile(`\[[^\]]*\]`)
	speakerPrefix   = regexp.MustCompile(`Speaker\s+[A-Z]+:`)
)

// IsFiller classifies a line as semantically empty: too few content
// words left once hesitations are removed, or too high a hesitation
// share overall. An empty line is always filler.
func (r Rules) IsFiller(text string) bool {
	total := len(strings.Fields(text))
	if total == 0 {
		return true
	}

	kept := strings.Fields(r.RemoveHesitations(text))

	content := 0
	for _, tok := range kept {
		if isAlphabetic(trimNonLetters(tok)) {
			content++
		}
	}
	if content < r.MinContentWords {
		return true
	}

	hesitation := total - len(kept)
	return float64(hesitation)/float64(total) > r.MaxHesitationRatio
}

// CleanText strips timestamp markers, speaker-label prefixes and
// hesitation tokens, then collapses whitespace.
func (r Rules) CleanText(text string) string {
	text = timestampMarker.ReplaceAllString(text, " ")
	text = speakerPrefix.ReplaceAllString(text, " ")
	return r.RemoveHesitations(text)
}

// RemoveHesitations drops hesitation vocabulary wherever it is embedded,
// keeping the remaining wording and punctuation intact. Matching is
// case-insensitive and ignores punctuation glued to a token.
func (r Rules) RemoveHesitations(text string) string {
	fields := strings.Fields(text)
	var kept []string

	for i := 0; i < len(fields); i++ {
		if n := r.matchPhrase(fields, i); n > 0 {
			i += n - 1
			continue
		}
		if r.isHesitationWord(normalizeToken(fields[i])) {
			continue
		}
		kept = append(kept, fields[i])
	}

	return strings.Join(kept, " ")
}

// matchPhrase returns the length in tokens of a multi-word hesitation
// phrase starting at index i, or 0 if none matches.
func (r Rules) matchPhrase(fields []string, i int) int {
	for _, entry := range r.HesitationTokens {
		words := strings.Fields(entry)
		if len(words) < 2 || i+len(words) > len(fields) {
			continue
		}
		matched := true
		for k, w := range words {
			if normalizeToken(fields[i+k]) != w {
				matched = false
				break
			}
		}
		if matched {
			return len(words)
		}
	}
	return 0
}

func (r Rules) isHesitationWord(word string) bool {
	for _, entry := range r.HesitationTokens {
		if !strings.Contains(entry, " ") && entry == word {
			return true
		}
	}
	return false
}

func normalizeToken(tok string) string {
	return trimNonLetters(strings.ToLower(tok))
}

func trimNonLetters(tok string) string {
	return strings.TrimFunc(tok, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func isAlphabetic(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
