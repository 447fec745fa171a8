package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/anikatabassum/maatricare/internal/agent"
	"github.com/anikatabassum/maatricare/internal/cli"
	"github.com/anikatabassum/maatricare/internal/config"
	"github.com/anikatabassum/maatricare/internal/llm"
	"github.com/anikatabassum/maatricare/internal/patient"
	"github.com/anikatabassum/maatricare/internal/video"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if cfg.APIKey == "" {
		return fmt.Errorf("no API key configured; set MAATRICARE_API_KEY or GROQ_API_KEY")
	}

	monitor := llm.NewMonitor(cfg.RequestsPerMinute)

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LogCalls {
		f, err := openCallLog(cfg)
		if err != nil {
			return fmt.Errorf("opening call log: %w", err)
		}
		defer f.Close()
		observer = llm.NewLogObserver(io.MultiWriter(f, os.Stderr))
	}

	client := llm.NewGroqClient(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Temperature)
	gate := llm.NewGate(client, monitor, observer, llm.GateConfig{
		Model:             cfg.Model,
		MaxConcurrent:     cfg.MaxConcurrent,
		RequestsPerMinute: cfg.RequestsPerMinute,
		RetryAttempts:     cfg.RetryAttempts,
		BaseRetryDelay:    cfg.BaseRetryDelay,
	})

	store := patient.NewStore(cfg.HistoryLimit)
	workers := agent.NewWorkers(video.NewSearcher())
	renderer := agent.NewRenderer(gate)

	app := &cli.App{
		Assistant: agent.NewPipeline(store, workers, renderer),
		Store:     store,
		Monitor:   monitor,
	}

	// Detect interactive terminal for the chat entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// openCallLog opens the append-only LLM call log, rotating it aside to
// a .1 file first when it has grown past the configured size cap.
func openCallLog(cfg config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(cfg.LogDir, "llm_calls.log")

	if info, err := os.Stat(path); err == nil {
		if info.Size() > int64(cfg.MaxLogSizeMB)<<20 {
			if err := os.Rename(path, path+".1"); err != nil {
				return nil, err
			}
		}
	}

	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
