package cleaner

import (
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

type implCleaner struct {
	apiKey  string
	model   string
	timeout time.Duration
	rules   transcript.Rules
	logger  logger.Logger
}

// New creates a Cleaner backed by the Gemini API. The rule set renders
// into the prompt, so the remote call and the local fallback apply one
// contract.
func New(apiKey, model string, timeout time.Duration, rules transcript.Rules, log logger.Logger) Cleaner {
	return &implCleaner{
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
		rules:   rules,
		logger:  log,
	}
}
