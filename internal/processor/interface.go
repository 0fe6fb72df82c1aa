package processor

import "context"

// Processor runs the transcript extraction pipeline.
type Processor interface {
	// Process handles one transcript file. It returns the output path,
	// or an empty path and one of the skip sentinels (ErrNoSegments,
	// ErrNoPrimarySpeaker, ErrNoPrimaryContent) when the file produced
	// nothing to summarize.
	Process(ctx context.Context, filePath string) (string, error)

	// ProcessAll discovers and processes every matching transcript under
	// the configured root. Per-file failures are isolated; the returned
	// slice holds the outputs that were written.
	ProcessAll(ctx context.Context) ([]string, error)
}
