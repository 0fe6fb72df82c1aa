package transcript

import (
	"regexp"
	"strings"
)

// Segment is one parsed speaker utterance. Segments keep the order they
// appear in the source file; that order encodes the conversational
// sequence and must be preserved.
type Segment struct {
	Timestamp string
	Speaker   string
	Text      string
}

var (
	// Matches a "[<timestamp>] Speaker <LABEL>:" block marker. The block
	// text runs from the marker to the next bracketed line or EOF.
	segmentMarker = regexp.MustCompile(`\[([^\]\n]+)\]\s+Speaker\s+([A-Z]+):`)

	// A block ends where the next "["-prefixed line begins, whether or
	// not that line is itself a well-formed marker.
	blockBoundary = regexp.MustCompile(`\n\s*\[`)
)

// ParseSegments extracts speaker segments from raw transcript content.
// Extraction is best-effort: malformed lines are skipped silently, and a
// transcript with no recognizable blocks yields an empty slice.
func ParseSegments(content string) []Segment {
	markers := segmentMarker.FindAllStringSubmatchIndex(content, -1)
	segments := make([]Segment, 0, len(markers))

	prevEnd := 0
	for _, m := range markers {
		// A marker swallowed by the previous block's text is not a new
		// block (it did not start on its own line).
		if m[0] < prevEnd {
			continue
		}

		textStart := m[1]
		textEnd := len(content)
		if loc := blockBoundary.FindStringIndex(content[textStart:]); loc != nil {
			textEnd = textStart + loc[0]
		}
		prevEnd = textEnd

		// Collapse internal whitespace and newlines to single spaces.
		text := strings.Join(strings.Fields(content[textStart:textEnd]), " ")
		if text == "" {
			continue
		}

		segments = append(segments, Segment{
			Timestamp: content[m[2]:m[3]],
			Speaker:   content[m[4]:m[5]],
			Text:      text,
		})
	}

	return segments
}
