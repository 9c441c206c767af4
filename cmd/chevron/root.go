package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/chevron"
	"github.com/iw2rmb/chevron/autocomplete"
	"github.com/iw2rmb/chevron/internal/catalog"
	"github.com/iw2rmb/chevron/internal/config"
	"github.com/iw2rmb/chevron/internal/log"
)

type rootFlags struct {
	configPath  string
	catalogFile string
	debug       bool
	lineNumbers bool
	initConfig  bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:           "chevron [file]",
		Short:         "A terminal editor with <> inline autocomplete",
		Long:          "Type <> to open the suggestion popup, filter by typing, pick with enter or tab.",
		Version:       chevron.Version(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "",
		"config file (default: .chevron/config.yaml or ~/.config/chevron/config.yaml)")
	cmd.Flags().StringVar(&f.catalogFile, "catalog-file", "",
		"file with one suggestion per line, or a YAML list; reloaded on change")
	cmd.Flags().BoolVarP(&f.debug, "debug", "d", false,
		"write debug log (also enabled by "+log.EnvDebug+")")
	cmd.Flags().BoolVarP(&f.lineNumbers, "line-numbers", "n", false, "show line numbers")
	cmd.Flags().BoolVar(&f.initConfig, "init-config", false,
		"write a default config to "+config.DefaultPath+" and exit")
	return cmd
}

func run(cmd *cobra.Command, f rootFlags, args []string) error {
	if f.initConfig {
		if err := config.WriteDefaultConfig(config.DefaultPath); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", config.DefaultPath)
		return nil
	}

	cfg, _, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("catalog-file") {
		cfg.CatalogFile = f.catalogFile
	}
	if cmd.Flags().Changed("line-numbers") {
		cfg.LineNumbers = f.lineNumbers
	}
	if f.debug || log.DebugFromEnv() {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Debug {
		cleanup, err := log.InitWithTeaLog(cfg.LogFile, "chevron")
		if err != nil {
			return err
		}
		defer cleanup()
	}

	text := ""
	path := ""
	if len(args) == 1 {
		path = args[0]
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			text = string(data)
		case os.IsNotExist(err):
		default:
			return fmt.Errorf("reading %s: %w", path, err)
		}
	}

	cat := autocomplete.NewCatalog(cfg.Catalog)
	var w *catalog.Watcher
	if cfg.CatalogFile != "" {
		if cat, err = catalog.Load(cfg.CatalogFile); err != nil {
			return err
		}
		if w, err = catalog.NewWatcher(cfg.CatalogFile, catalog.DefaultDebounce); err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			_ = w.Stop()
			return err
		}
		defer func() { _ = w.Stop() }()
	}

	// Query the background color before the program owns stdin.
	_ = lipgloss.HasDarkBackground()

	zones := zone.New()
	m := newApp(appOptions{
		Config:    cfg,
		Text:      text,
		Path:      path,
		Catalog:   cat,
		Watcher:   w,
		Zones:     zones,
		Clipboard: systemClipboard{},
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	if a, ok := final.(app); ok && path != "" && a.saved {
		if err := os.WriteFile(path, []byte(a.editor.Buffer().Text()), 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
