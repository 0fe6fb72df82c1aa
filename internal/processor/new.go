package processor

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/cleaner"
	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

type implProcessor struct {
	cfg        *config.Config
	heuristics transcript.Heuristics
	rules      transcript.Rules
	cleaner    cleaner.Cleaner
	logger     logger.Logger
}

// New creates a Processor. cl may be nil when no remote credential is
// configured; every file then takes the local assembly path.
func New(cfg *config.Config, cl cleaner.Cleaner, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		heuristics: cfg.Heuristics(),
		rules:      cfg.FillerRules(),
		cleaner:    cl,
		logger:     log,
	}
}
