package transcript

import "strings"

// PrimarySpeaker returns the label with the highest aggregate word count
// across all segments. A tie breaks toward the speaker that appears first
// in the transcript, so the result is stable for identical input. The
// second return value is false when there are no segments.
func PrimarySpeaker(segments []Segment) (string, bool) {
	counts := make(map[string]int)
	var order []string

	for _, seg := range segments {
		if _, seen := counts[seg.Speaker]; !seen {
			order = append(order, seg.Speaker)
		}
		counts[seg.Speaker] += len(strings.Fields(seg.Text))
	}

	if len(order) == 0 {
		return "", false
	}

	primary := order[0]
	for _, speaker := range order[1:] {
		if counts[speaker] > counts[primary] {
			primary = speaker
		}
	}

	return primary, true
}
