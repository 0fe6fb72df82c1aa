package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// outputPath derives the sibling artifact path. The exact input suffix
// is replaced when present; a discovered file without it has its .txt
// extension replaced instead.
func (p *implProcessor) outputPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)

	if strings.HasSuffix(base, p.cfg.Discovery.InputSuffix) {
		base = strings.TrimSuffix(base, p.cfg.Discovery.InputSuffix)
	} else {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return filepath.Join(dir, base+p.cfg.Discovery.OutputSuffix)
}

// save writes the text to a temp file in the target directory and
// renames it into place, so a failure never leaves a partial artifact.
func (p *implProcessor) save(text, inputPath string) (string, error) {
	outputPath := p.outputPath(inputPath)

	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".rag-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("move output into place: %w", err)
	}

	return outputPath, nil
}
