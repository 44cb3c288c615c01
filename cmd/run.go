package cmd

import (
	"fmt"

	"github.com/RandintRayquaza/FocusLab/internal/app"
	"github.com/RandintRayquaza/FocusLab/internal/config"
	"github.com/RandintRayquaza/FocusLab/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads configuration, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(st, cfg)
}
