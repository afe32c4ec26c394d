package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/escriba/internal/app"
	"github.com/abhisek/escriba/internal/grader"
	"github.com/abhisek/escriba/internal/lang"
	"github.com/abhisek/escriba/internal/llm"
	"github.com/abhisek/escriba/internal/round"
	"github.com/abhisek/escriba/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	// AI grading is optional; without a provider the rubric and tag
	// detectors mark the round on their own.
	var g *grader.Grader
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Rounds will be marked locally.")
	} else {
		g = grader.New(provider, grader.DefaultConfig())
	}

	opts := app.Options{
		EventRepo: eventRepo,
		SnapRepo:  st.SnapshotRepo(),
		Finalizer: round.NewFinalizer(g),
		Lang:      lang.CodeSpanish,
	}
	return app.Run(opts)
}
