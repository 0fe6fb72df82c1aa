package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

// Process walks one file through the pipeline: parse, select the primary
// speaker, extract contextual turns, clean (remote first, local
// fallback), save. Skips return an empty path and a skip sentinel so one
// unusable transcript never aborts a batch.
func (p *implProcessor) Process(ctx context.Context, filePath string) (string, error) {
	p.logger.Info(ctx, "Processing: %s", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	segments := transcript.ParseSegments(string(content))
	if len(segments) == 0 {
		p.logger.Info(ctx, "No segments found in %s", filePath)
		return "", ErrNoSegments
	}

	primary, ok := transcript.PrimarySpeaker(segments)
	if !ok {
		p.logger.Info(ctx, "No primary speaker identified in %s", filePath)
		return "", ErrNoPrimarySpeaker
	}
	p.logger.Info(ctx, "Primary speaker: %s", primary)

	turns := transcript.ExtractTurns(segments, primary, p.heuristics)
	if len(turns) == 0 {
		p.logger.Info(ctx, "No content from primary speaker in %s", filePath)
		return "", ErrNoPrimaryContent
	}

	text := p.generate(ctx, strings.TrimSpace(string(content)), primary, turns)

	outputPath, err := p.save(text, filePath)
	if err != nil {
		return "", fmt.Errorf("save output: %w", err)
	}

	if p.cfg.Output.Docx {
		docxPath := strings.TrimSuffix(outputPath, ".txt") + ".docx"
		title := strings.TrimSuffix(filepath.Base(filePath), p.cfg.Discovery.InputSuffix)
		if err := textToDocx(title, text, docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to write docx %s: %v", docxPath, err)
		}
	}

	p.logger.Info(ctx, "RAG content saved to: %s", outputPath)
	return outputPath, nil
}

// generate prefers the remote cleanup and falls back to deterministic
// local assembly on any failure.
func (p *implProcessor) generate(ctx context.Context, raw, primary string, turns []transcript.ContextualTurn) string {
	if p.cleaner != nil {
		cleaned, err := p.cleaner.Clean(ctx, raw, primary)
		if err == nil {
			return cleaned
		}
		p.logger.Warn(ctx, "Remote cleanup failed, using local assembly: %v", err)
	}
	return transcript.AssembleFallback(turns, p.heuristics, p.rules)
}

// ProcessAll discovers matching transcripts under the root and processes
// them sequentially. A missing root ends the run with a zero-result
// report, not an error.
func (p *implProcessor) ProcessAll(ctx context.Context) ([]string, error) {
	files, err := p.discover()
	if err != nil {
		if os.IsNotExist(err) {
			p.logger.Warn(ctx, "No timestamp files found in %s", p.cfg.Paths.Root)
			return nil, nil
		}
		return nil, fmt.Errorf("discover transcripts: %w", err)
	}

	if len(files) == 0 {
		p.logger.Info(ctx, "No timestamp files found in %s", p.cfg.Paths.Root)
		return nil, nil
	}

	p.logger.Info(ctx, "Found %d timestamp files to process", len(files))

	var outputs []string
	skipped := 0
	failed := 0
	for i, file := range files {
		p.logger.Debug(ctx, "[%d/%d] %s", i+1, len(files), file)

		outputPath, err := p.Process(ctx, file)
		switch {
		case IsSkip(err):
			skipped++
		case err != nil:
			p.logger.Error(ctx, "Failed to process %s: %v", file, err)
			failed++
		default:
			outputs = append(outputs, outputPath)
		}
	}

	p.logger.Info(ctx, "Processing complete: %d RAG content files, %d skipped, %d failed",
		len(outputs), skipped, failed)

	return outputs, nil
}
