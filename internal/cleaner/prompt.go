package cleaner

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

const promptTemplate = `Task
You are given a Russian transcript where each line is formatted as:

[MM:SS] Speaker X: ...text...

Task: Extract only the expert's speech (the speaker exactly matching %[1]s), preserving their original style while presenting a clear and concise description of the problem and solution. The final result must be a continuous plain text with no skipped-line gaps.

Deterministic Rules, rule set %[2]s (apply in order):

Identify expert turns:

Any line where the speaker equals %[1]s is an expert turn.

Merge consecutive expert turns (no intervening non-expert speech) into a single reply, concatenating their text with a single space. Preserve original wording and punctuation.

Context merging:

If expert turns are separated only by empty or filler lines, treat them as consecutive and merge them.

Filler detection (for non-experts):

Skip a non-expert line if:

It contains fewer than %[3]d content words (after removing hesitation tokens), OR

More than %[4]d%% of its tokens are hesitation tokens.

Content words = word tokens in the transcript's script excluding hesitation tokens.

Hesitation tokens (remove wherever they appear):

%[5]s.

Cleaning rules:

Remove timestamps ([MM:SS]) and speaker labels (Speaker X:).

Remove hesitation tokens completely.

Normalize spaces (collapse multiple spaces, trim edges).

Preserve original language and punctuation.

Output format (plain text only):

Output each expert reply block in chronological order as continuous plain text.

Do not leave empty lines between blocks, even if some parts were skipped.

The result must clearly present the problem and the expert's solution in their natural style.

Do not add any extra text, labels, numbering, or explanations.

Edge cases:

If no expert turns exist, output nothing.

Input:
%[6]s`

// BuildPrompt renders the rule contract into the instruction sent to the
// remote collaborator. The output is fully deterministic for a given
// rule set, speaker and transcript.
func BuildPrompt(rules transcript.Rules, primarySpeaker, rawTranscript string) string {
	quoted := make([]string, 0, len(rules.HesitationTokens))
	for _, tok := range rules.HesitationTokens {
		quoted = append(quoted, "«"+tok+"»")
	}

	return fmt.Sprintf(promptTemplate,
		primarySpeaker,
		rules.Version,
		rules.MinContentWords,
		int(rules.MaxHesitationRatio*100),
		strings.Join(quoted, ", "),
		rawTranscript,
	)
}
