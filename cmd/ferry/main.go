package main

import (
	"fmt"
	"os"
	"path/filepath"

	"ferry/internal/app"
	"ferry/internal/browse"
	"ferry/internal/config"
	"ferry/internal/log"
	"ferry/internal/transfer"
	"ferry/internal/tui"
	"ferry/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var (
		cfgFile   string
		leftRoot  string
		rightRoot string
		debug     bool
	)

	rootCmd := &cobra.Command{
		Use:     "ferry",
		Short:   "A dual-pane terminal file browser",
		Long:    `Ferry shows two directory trees side by side and copies the selected file or directory across with a single keystroke.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				log.SetDebug(true)
				if cacheDir, err := os.UserCacheDir(); err == nil {
					logPath := filepath.Join(cacheDir, "ferry", "ferry.log")
					if err := os.MkdirAll(filepath.Dir(logPath), 0755); err == nil {
						log.Configure(log.WithFile(logPath))
					}
				}
				defer log.Close()
			}

			// Load configuration
			var cfg *config.Config
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				return err
			}

			// Flags override the config file
			if leftRoot != "" {
				if cfg.Panes.Left, err = filepath.Abs(leftRoot); err != nil {
					return fmt.Errorf("invalid left root: %w", err)
				}
			}
			if rightRoot != "" {
				if cfg.Panes.Right, err = filepath.Abs(rightRoot); err != nil {
					return fmt.Errorf("invalid right root: %w", err)
				}
			}
			if err := cfg.RequireRoots(); err != nil {
				return err
			}

			return run(cfg)
		},
	}

	rootCmd.Flags().StringVarP(&leftRoot, "left", "l", "", "root directory of the left pane")
	rootCmd.Flags().StringVarP(&rightRoot, "right", "r", "", "root directory of the right pane")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/ferry/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs to the user cache directory")

	return rootCmd
}

func run(cfg *config.Config) error {
	filter, err := browse.NewFilter(cfg.Settings.ShowHidden, cfg.Settings.Hide)
	if err != nil {
		return err
	}

	lister := browse.OSLister{}
	left := browse.NewListing(cfg.Panes.Left, lister, filter, cfg.Settings.FallbackRoot)
	right := browse.NewListing(cfg.Panes.Right, lister, filter, cfg.Settings.FallbackRoot)

	engine := transfer.NewExecEngine(cfg.Copy.Command, cfg.Copy.Args...)
	executor := transfer.NewExecutor(engine)

	ctrl := app.NewController(left, right, executor,
		cfg.Settings.StatusTicks, !cfg.Settings.LazyRefresh)

	// Auto-refresh is best effort; run without it if inotify is unavailable
	watcher, err := watch.New()
	if err != nil {
		log.LogWithFields(log.F("error", err)).Warn("auto-refresh disabled")
		watcher = nil
	} else {
		if err := watcher.Start(); err != nil {
			log.LogWithFields(log.F("error", err)).Warn("auto-refresh disabled")
			watcher = nil
		} else {
			defer watcher.Stop()
		}
	}

	p := tea.NewProgram(tui.New(ctrl, watcher), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
