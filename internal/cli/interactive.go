package cli

import (
	"context"
	"fmt"

	"github.com/idilsaglam/lunar/internal/store/catalogstore"
	"github.com/idilsaglam/lunar/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runInteractive(cmd *cobra.Command, st *state) error {
	cfg := st.cfg
	catalog, err := catalogstore.Load(cfg.Content.Path)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	opt := tui.Options{
		Catalog: catalog,
		Loading: cfg.LoadingSettings(),
		Splash:  cfg.UI.Splash,
		Start:   cfg.StartRoute(),
		Logger:  st.log,
	}
	if cfg.Content.Watch {
		if cfg.Content.Path == "" {
			return usagef("--watch needs --content")
		}
		w, err := catalogstore.Watch(ctx, cfg.Content.Path)
		if err != nil {
			return err
		}
		defer w.Close()
		opt.Updates = w.Updates()
	}

	st.log.Info("starting",
		zap.String("start", cfg.UI.Start),
		zap.Bool("splash", cfg.UI.Splash),
		zap.String("content", cfg.Content.Path),
		zap.Int("articles", len(catalog.Articles)),
	)
	if err := tui.Run(opt); err != nil {
		st.log.Error("tui failed", zap.Error(err))
		return fmt.Errorf("tui: %w", err)
	}
	st.log.Info("bye")
	return nil
}
