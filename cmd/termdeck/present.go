package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/termdeck/termdeck/internal/adapters/primary/tui"
	"github.com/termdeck/termdeck/internal/adapters/secondary/config"
	deckloader "github.com/termdeck/termdeck/internal/adapters/secondary/deck"
	"github.com/termdeck/termdeck/internal/adapters/secondary/opener"
	"github.com/termdeck/termdeck/internal/adapters/secondary/renderer"
	"github.com/termdeck/termdeck/internal/adapters/secondary/viewer"
	"github.com/termdeck/termdeck/internal/adapters/secondary/watcher"
	"github.com/termdeck/termdeck/internal/domain/entities"
	"github.com/termdeck/termdeck/internal/domain/ports"
	"github.com/termdeck/termdeck/internal/domain/services"
	"github.com/termdeck/termdeck/internal/log"
)

var (
	// Present command flags
	presentMargin   int
	presentTheme    string
	presentWatch    bool
	presentNoViewer bool
)

// presentCmd represents the present command
var presentCmd = &cobra.Command{
	Use:   "present [deck]",
	Short: "Present a deck of slides in the terminal",
	Long: `Present the slides of a deck file full-screen, one at a time.

Navigation: down/up arrows move between slides, +/- adjust the layout
margin, enter activates the current slide, escape quits. Moving past the
last slide ends the presentation.

Example:
  termdeck present talk.yaml
  termdeck present talk.yaml --margin 4 --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runPresent,
}

func init() {
	rootCmd.AddCommand(presentCmd)

	presentCmd.Flags().IntVarP(&presentMargin, "margin", "m", -1, "Initial layout margin (overrides config)")
	presentCmd.Flags().StringVarP(&presentTheme, "theme", "t", "", "Markdown theme (overrides config)")
	presentCmd.Flags().BoolVarP(&presentWatch, "watch", "w", false, "Reload the deck when the file changes")
	presentCmd.Flags().BoolVar(&presentNoViewer, "no-viewer", false, "Show placeholders instead of invoking the image viewer")
}

func runPresent(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	deckPath := args[0]

	cfg, err := loadConfig(ctx, cmd, filepath.Dir(deckPath))
	if err != nil {
		return err
	}

	if err := log.Setup(cfg.Logging.File, cfg.Logging.Verbose); err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	var fileWatcher ports.FileWatcher
	if cfg.Watcher.Enabled && presentWatch {
		fileWatcher = watcher.New(time.Duration(cfg.Watcher.DebounceMs) * time.Millisecond)
	}

	service := services.NewDeckService(deckloader.NewYAMLLoader(), fileWatcher)

	deck, err := service.LoadDeck(ctx, deckPath)
	if err != nil {
		return err
	}

	model := tui.NewModel(
		deck,
		renderer.New(cfg),
		viewer.NewViuViewer(cfg.Viewer.Command),
		opener.NewLauncher(),
		cfg,
	)

	if fileWatcher != nil {
		events, err := service.WatchDeck(ctx, deckPath)
		if err != nil {
			return err
		}
		defer func() { _ = fileWatcher.Stop() }()

		model = model.WithReload(events, func() (*entities.Deck, error) {
			return service.LoadDeck(context.Background(), deckPath)
		})
	}

	// Rendering targets stderr; the viewer and opener share the screen
	// with the presenter, so the alternate screen stays off.
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("running presentation: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}

	return nil
}

// loadConfig assembles the effective configuration: defaults, global
// file, optional local file, then flags.
func loadConfig(ctx context.Context, cmd *cobra.Command, localDir string) (*entities.Config, error) {
	loader := config.NewTOMLLoader()

	global, err := loader.LoadGlobal(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	local, err := loader.LoadLocal(ctx, localDir)
	if err != nil {
		return nil, fmt.Errorf("loading local config: %w", err)
	}

	merger := config.NewMerger()
	cfg := merger.Merge(config.GetDefaultConfig(), global, local)

	verbose, _ := cmd.Flags().GetBool("verbose")
	flags := map[string]interface{}{
		"theme":     presentTheme,
		"no-viewer": presentNoViewer,
		"verbose":   verbose,
	}
	if presentMargin >= 0 {
		flags["margin"] = presentMargin
	}
	if cmd.Flags().Changed("watch") {
		flags["watch"] = presentWatch
	}
	cfg = merger.ApplyFlags(cfg, flags)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
