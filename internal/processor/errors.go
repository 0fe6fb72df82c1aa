package processor

import "errors"

// Skip sentinels for the per-file taxonomy. They mark transcripts that
// produce no artifact without being failures: ProcessAll counts them as
// skips and keeps going, and callers can tell the reasons apart.
var (
	ErrNoSegments       = errors.New("no segments found")
	ErrNoPrimarySpeaker = errors.New("no primary speaker identified")
	ErrNoPrimaryContent = errors.New("no content from primary speaker")
)

// IsSkip reports whether err is one of the skip sentinels.
func IsSkip(err error) bool {
	return errors.Is(err, ErrNoSegments) ||
		errors.Is(err, ErrNoPrimarySpeaker) ||
		errors.Is(err, ErrNoPrimaryContent)
}
