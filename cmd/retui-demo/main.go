// Command retui-demo shows the widget set running on a terminal
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/retui/app"
	"github.com/lixenwraith/retui/config"
	"github.com/lixenwraith/retui/core"
)

func main() {
	// Panic recovery: restore the terminal even if the tree panics outside a node body
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := config.New()
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "retui-demo",
		Short: "retui-demo shows the retui widgets",
		Long: "retui-demo runs a tabbed demo of the retui widgets: a form, a scrolling list and a\n" +
			"navigation stack. Arrows or h,j,k,l move focus, [ and ] switch tabs, DEL goes back\n" +
			"and q or CTRL-D quits.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v, cfgPath)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgPath, "config", "", "TOML config file")
	flags.Bool("debug", false, "write debug logs under "+logDir+"/")
	flags.Bool("no-alt", false, "draw on the main screen instead of the alternate screen")
	flags.Bool("ascii-snapshot", false, "draw colored blanks as solid blocks")
	flags.Bool("focus-highlight", false, "box the focused element")
	flags.Bool("disable-mouse", false, "do not enable mouse reporting")
	flags.String("color", "auto", "color mode: auto, truecolor, 256")
	bindFlags(v, cmd)
	return cmd
}

// bindFlags maps each dashed flag onto its underscored config key
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	for flag, key := range map[string]string{
		"debug":           config.KeyDebug,
		"no-alt":          config.KeyNoAlt,
		"ascii-snapshot":  config.KeyASCIISnapshot,
		"focus-highlight": config.KeyFocusHighlight,
		"disable-mouse":   config.KeyDisableMouse,
		"color":           config.KeyColor,
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding --%s: %v", flag, err))
		}
	}
}

func run(ctx context.Context, v *viper.Viper, cfgPath string) error {
	cfg, err := config.Load(v, cfgPath)
	if err != nil {
		return err
	}

	logger, logFile := setupLogging(cfg.Debug, cfg.LogFile)
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Info("starting", "color", cfg.Color, "mouse", !cfg.DisableMouse, "alt", !cfg.NoAlt)

	if ctx == nil {
		ctx = context.Background()
	}
	a := app.New(demo{}, app.WithConfig(cfg), app.WithLogger(logger))
	defer func() { logger.Debug("stats", a.Stats().KeyVals()...) }()
	if err := a.Run(ctx); err != nil {
		if errors.Is(err, app.ErrNotTerminal) {
			return fmt.Errorf("retui-demo needs an interactive terminal: %w", err)
		}
		return err
	}
	logger.Info("stopped")
	return nil
}
