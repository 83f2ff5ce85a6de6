package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/idilsaglam/labeler/internal/config"
	"github.com/idilsaglam/labeler/internal/controller"
	"github.com/idilsaglam/labeler/internal/labels"
	"github.com/idilsaglam/labeler/internal/logging"
	"github.com/idilsaglam/labeler/internal/source"
	"github.com/idilsaglam/labeler/internal/store"
	"github.com/idilsaglam/labeler/internal/tui"
	"github.com/idilsaglam/labeler/internal/ui"
)

// app is the state shared by every subcommand once config is loaded.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "labeler",
		Short: "Manual data categorizer",
		Long: `labeler pages through a list of text items and lets you sort each one
into a category. Items start in "Not specified". Export writes every item and
its category to a file.

Run without arguments to start the interactive screen.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
		RunE:              a.runTUI,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default .labeler.yaml in . or $HOME)")
	pf.StringP("input", "i", "", "file with one item name per line (default: shuffled sample list)")
	pf.Int("sample-size", source.DefaultSampleSize, "number of sample items when no input file is given")
	pf.Uint64("seed", 0, "shuffle seed for the sample list (0 = random)")
	pf.StringP("format", "f", "json", "export format: json, yaml, toml or sqlite")
	pf.StringP("output", "o", "", "export path (default labels.<ext> in the working directory)")
	pf.String("theme", "classic", "summary theme: classic, neon or mono")
	pf.String("color", "auto", "color output: auto, always or never")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-file", "", "write logs to this file")

	for key, flag := range map[string]string{
		"input.path":        "input",
		"input.sample_size": "sample-size",
		"input.seed":        "seed",
		"export.format":     "format",
		"export.path":       "output",
		"ui.theme":          "theme",
		"ui.color":          "color",
		"log.level":         "log-level",
		"log.file":          "log-file",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(a.newScriptCmd(), a.newSampleCmd())
	return root
}

func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	home, _ := os.UserHomeDir()
	if err := config.Init(a.v, a.cfgFile, home); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	ui.SetColorMode(cfg.UI.Color)
	ui.SetTheme(cfg.UI.Theme)
	return nil
}

// session loads the items and opens the sink for one labeling session.
func (a *app) session(view controller.UI, log *zap.Logger) (*controller.Controller, error) {
	names, err := source.Load(a.cfg.Input.Path, a.cfg.Input.SampleSize, a.cfg.Input.Seed)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	sink, err := store.Open(a.cfg.Export.Format, a.cfg.Export.Path)
	if err != nil {
		return nil, err
	}
	log.Info("session ready",
		zap.Int("items", len(names)),
		zap.String("export", sink.Path()))
	return controller.New(labels.FromNames(names), view, sink, log), nil
}

func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	log, err := logging.ForTUI(a.cfg.Log.Level, a.cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	board := tui.NewBoard()
	ctrl, err := a.session(board, log)
	if err != nil {
		return err
	}
	if err := tui.Run(cmd.Context(), ctrl, board); err != nil {
		return err
	}
	ui.Summary(cmd.OutOrStdout(), ctrl.Frame())
	return nil
}
