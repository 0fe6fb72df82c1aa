package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/transcript-flow/internal/cleaner"
	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/processor"
	"github.com/nguyentantai21042004/transcript-flow/internal/watcher"
)

var (
	flagConfig string
	flagRoot   string
	flagFile   string
	flagAPIKey string
	flagWatch  bool
)

func main() {
	cmd := &cobra.Command{
		Use:          "transcript-flow",
		Short:        "Extract clean single-speaker text from timestamped transcripts for RAG indexing",
		RunE:         run,
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "config.yaml", "path to YAML configuration")
	cmd.Flags().StringVarP(&flagRoot, "root", "d", "", "directory containing *timestamps.txt transcripts")
	cmd.Flags().StringVarP(&flagFile, "file", "f", "", "process a single timestamp file")
	cmd.Flags().StringVar(&flagAPIKey, "api-key", "", "Gemini API key for remote cleanup (defaults to $GEMINI_API_KEY)")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "keep running and process new transcripts as they appear")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return err
	}

	if flagRoot != "" {
		cfg.Paths.Root = flagRoot
	}

	log := logger.New(cfg.Logging.Level)

	apiKey := flagAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var cl cleaner.Cleaner
	if apiKey != "" {
		cl = cleaner.New(apiKey, cfg.Gemini.Model, cfg.GeminiTimeout(), cfg.FillerRules(), log)
		log.Info(ctx, "Remote cleanup enabled (model: %s)", cfg.Gemini.Model)
	} else {
		log.Info(ctx, "No Gemini API key configured, using local assembly only")
	}

	proc := processor.New(cfg, cl, log)

	if flagFile != "" {
		if _, err := os.Stat(flagFile); err != nil {
			log.Error(ctx, "File not found: %s", flagFile)
			return fmt.Errorf("file not found: %s", flagFile)
		}
		if _, err := proc.Process(ctx, flagFile); err != nil && !processor.IsSkip(err) {
			return err
		}
		return nil
	}

	if flagWatch {
		return runWatch(ctx, cfg, proc, log)
	}

	_, err = proc.ProcessAll(ctx)
	return err
}

// loadConfig reads the configured YAML file. The default path is allowed
// to be absent; an explicitly named file is not.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if _, err := os.Stat(flagConfig); err != nil {
		if os.IsNotExist(err) && !cmd.Flags().Changed("config") {
			return config.Default(), nil
		}
		return nil, err
	}
	return config.Load(flagConfig)
}

func runWatch(ctx context.Context, cfg *config.Config, proc processor.Processor, log logger.Logger) error {
	handler := func(ctx context.Context, path string) error {
		_, err := proc.Process(ctx, path)
		if processor.IsSkip(err) {
			return nil
		}
		return err
	}

	w, err := watcher.New(cfg.Paths.Root, cfg.Discovery.Match, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Root)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
		return err
	}

	cancel()
	return nil
}
