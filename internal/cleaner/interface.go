package cleaner

import "context"

// Cleaner turns a raw timestamped transcript into continuous plain text
// carrying only the named primary speaker's content. Implementations are
// opaque collaborators; any failure leaves the caller on the
// deterministic local path.
type Cleaner interface {
	Clean(ctx context.Context, transcript, primarySpeaker string) (string, error)
}
