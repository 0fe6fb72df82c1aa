package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Discovery   DiscoveryConfig   `yaml:"discovery"`
	Context     ContextConfig     `yaml:"context"`
	Filler      FillerConfig      `yaml:"filler"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type PathsConfig struct {
	Root string `yaml:"root"`
}

type DiscoveryConfig struct {
	// Match selects transcript files by filename suffix during discovery.
	Match string `yaml:"match"`
	// InputSuffix is the exact trailing suffix replaced by OutputSuffix
	// when deriving the sibling output path.
	InputSuffix  string `yaml:"input_suffix"`
	OutputSuffix string `yaml:"output_suffix"`
}

// Heuristic knobs use pointers so an explicit zero in the YAML is
// honored rather than mistaken for "unset".
type ContextConfig struct {
	Lookback        *int     `yaml:"lookback"`
	ShortLineTokens *int     `yaml:"short_line_tokens"`
	CueWords        []string `yaml:"cue_words"`
}

type FillerConfig struct {
	RulesVersion       string   `yaml:"rules_version"`
	HesitationTokens   []string `yaml:"hesitation_tokens"`
	MinContentWords    *int     `yaml:"min_content_words"`
	MaxHesitationRatio *float64 `yaml:"max_hesitation_ratio"`
}

type GeminiConfig struct {
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type OutputConfig struct {
	// Docx additionally renders each artifact as a .docx next to the .txt.
	Docx bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads, parses and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration used when no config file is
// present.
func Default() *Config {
	cfg := &Config{}
	// Validate on a zero value only fills defaults.
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.Context.Lookback != nil && *c.Context.Lookback < 0 {
		return fmt.Errorf("context.lookback must not be negative")
	}
	if c.Context.ShortLineTokens != nil && *c.Context.ShortLineTokens < 0 {
		return fmt.Errorf("context.short_line_tokens must not be negative")
	}
	if c.Filler.MinContentWords != nil && *c.Filler.MinContentWords < 0 {
		return fmt.Errorf("filler.min_content_words must not be negative")
	}
	if c.Filler.MaxHesitationRatio != nil && (*c.Filler.MaxHesitationRatio < 0 || *c.Filler.MaxHesitationRatio > 1) {
		return fmt.Errorf("filler.max_hesitation_ratio must be between 0 and 1")
	}
	if c.Gemini.TimeoutSeconds < 0 {
		return fmt.Errorf("gemini.timeout_seconds must not be negative")
	}

	if c.Paths.Root == "" {
		c.Paths.Root = "transcriptions"
	}
	if c.Discovery.Match == "" {
		c.Discovery.Match = "timestamps.txt"
	}
	if c.Discovery.InputSuffix == "" {
		c.Discovery.InputSuffix = "_timestamps.txt"
	}
	if c.Discovery.OutputSuffix == "" {
		c.Discovery.OutputSuffix = "_rag_content.txt"
	}

	defaults := transcript.DefaultHeuristics()
	if c.Context.Lookback == nil {
		c.Context.Lookback = &defaults.Lookback
	}
	if c.Context.ShortLineTokens == nil {
		c.Context.ShortLineTokens = &defaults.ShortLineTokens
	}
	if len(c.Context.CueWords) == 0 {
		c.Context.CueWords = defaults.CueWords
	}

	rules := transcript.DefaultRules()
	if c.Filler.RulesVersion == "" {
		c.Filler.RulesVersion = rules.Version
	}
	if len(c.Filler.HesitationTokens) == 0 {
		c.Filler.HesitationTokens = rules.HesitationTokens
	}
	if c.Filler.MinContentWords == nil {
		c.Filler.MinContentWords = &rules.MinContentWords
	}
	if c.Filler.MaxHesitationRatio == nil {
		c.Filler.MaxHesitationRatio = &rules.MaxHesitationRatio
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.TimeoutSeconds == 0 {
		c.Gemini.TimeoutSeconds = 60
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

// Heuristics binds the context section to the extractor's parameters.
// Call Validate first so the pointers are filled.
func (c *Config) Heuristics() transcript.Heuristics {
	return transcript.Heuristics{
		Lookback:        *c.Context.Lookback,
		ShortLineTokens: *c.Context.ShortLineTokens,
		CueWords:        c.Context.CueWords,
	}
}

// FillerRules binds the filler section to the shared rule contract.
// Call Validate first so the pointers are filled.
func (c *Config) FillerRules() transcript.Rules {
	return transcript.Rules{
		Version:            c.Filler.RulesVersion,
		HesitationTokens:   c.Filler.HesitationTokens,
		MinContentWords:    *c.Filler.MinContentWords,
		MaxHesitationRatio: *c.Filler.MaxHesitationRatio,
	}
}

// GeminiTimeout returns the bounded per-call timeout for remote cleanup.
func (c *Config) GeminiTimeout() time.Duration {
	return time.Duration(c.Gemini.TimeoutSeconds) * time.Second
}
