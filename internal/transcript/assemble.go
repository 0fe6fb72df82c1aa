package transcript

import "strings"

// AssembleFallback builds the plain-text artifact without any remote
// help. A context line survives only when it passes the filler test and
// contains a question mark or a cue word; each surviving line and each
// primary turn becomes its own block, separated by blank lines.
func AssembleFallback(turns []ContextualTurn, h Heuristics, r Rules) string {
	var blocks []string

	for _, turn := range turns {
		for _, line := range turn.Context {
			if r.IsFiller(line.Text) {
				continue
			}
			if !strings.Contains(line.Text, "?") && !h.HasCueWord(line.Text) {
				continue
			}
			if cleaned := r.CleanText(line.Text); cleaned != "" {
				blocks = append(blocks, cleaned)
			}
		}
		if cleaned := r.CleanText(turn.PrimaryText); cleaned != "" {
			blocks = append(blocks, cleaned)
		}
	}

	return strings.Join(blocks, "\n\n")
}
