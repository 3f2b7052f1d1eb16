package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/glassy/internal/catalog"
	"github.com/five82/glassy/internal/config"
	"github.com/five82/glassy/internal/logging"
	"github.com/five82/glassy/internal/nav"
	"github.com/five82/glassy/internal/state"
	"github.com/five82/glassy/internal/ui"
)

// Options configure the glassy application. Nil overrides keep the config
// file value.
type Options struct {
	ConfigPath string // empty uses default ~/.config/glassy/config.toml
	Catalog    *string
	Theme      *string
	Watch      *bool
}

// runtime is everything Run wires before handing control to the UI.
type runtime struct {
	cfg    config.Config
	logger *logging.Logger
	store  *state.Store
}

// Run boots the glassy TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	rt, err := bootstrap(opts)
	if err != nil {
		return err
	}
	defer rt.logger.Close()

	if rt.cfg.Watch {
		if rt.cfg.Catalog == "" {
			rt.logger.Info("watch ignored for the embedded catalog")
		} else {
			stop := StartReloader(ctx, rt.store, rt.cfg.Catalog, rt.cfg.PollInterval, rt.logger.Logger)
			defer stop()
		}
	}

	uiOpts := ui.Options{
		Context:           ctx,
		Store:             rt.store,
		Router:            nav.NewRouter(rt.logger.Logger),
		Logger:            rt.logger.Logger,
		ThemeName:         rt.cfg.Theme,
		ResetPageOnFilter: rt.cfg.ResetPageOnFilter,
		LogPath:           rt.logger.Path(),
	}
	err = ui.Run(uiOpts)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	rt.logger.Info("glassy stopped", zap.Error(err))
	return err
}

// bootstrap loads configuration, opens the log and publishes the initial
// catalog.
func bootstrap(opts Options) (*runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.Apply(config.Overrides{Catalog: opts.Catalog, Theme: opts.Theme, Watch: opts.Watch})

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	logger.Info("glassy starting",
		zap.String("config", cfg.Path),
		zap.String("catalog", cfg.Catalog),
		zap.String("theme", cfg.Theme),
		zap.Bool("watch", cfg.Watch))

	cat, err := catalog.LoadPattern(cfg.Catalog)
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("catalog loaded",
		zap.String("name", cat.Name()),
		zap.String("source", cat.Source()),
		zap.Int("components", cat.Len()))

	store := &state.Store{}
	store.Update(cat, nil)

	return &runtime{cfg: cfg, logger: logger, store: store}, nil
}
