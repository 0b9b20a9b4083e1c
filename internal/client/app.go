package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/dia-companion/internal/adapter"
	"github.com/MKhiriev/dia-companion/internal/config"
	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/session"
	"github.com/MKhiriev/dia-companion/internal/store"
	"github.com/MKhiriev/dia-companion/models"
	"github.com/spf13/cobra"
)

type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo

	// newAdapter builds the server adapter once flags are applied.
	newAdapter func(cfg config.Adapter, logger *logger.Logger) (adapter.ServerAdapter, error)

	api  adapter.ServerAdapter
	gate *session.Gate

	now func() time.Time

	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{
		cfg:        cfg,
		buildInfo:  buildInfo,
		newAdapter: adapter.NewHTTPServerAdapter,
		now:        time.Now,
		logger:     logger,
	}
}

// Run executes args against the command tree.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.Command()
	root.SetArgs(args)
	return root.ExecuteContext(a.logger.WithContext(ctx))
}

// Command builds the root command. Persistent flags override the
// configuration loaded from the environment.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "dia-client",
		Short:         "DiaCompanion command-line client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Adapter.HTTPAddress, "server", a.cfg.Adapter.HTTPAddress, "server base URL")
	flags.DurationVar(&a.cfg.Adapter.RequestTimeout, "timeout", a.cfg.Adapter.RequestTimeout, "request timeout")
	flags.StringVar(&a.cfg.Session.MarkerPath, "session-file", a.cfg.Session.MarkerPath, "session marker file")

	root.AddCommand(
		a.registerCmd(),
		a.loginCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.recordsCmd(),
		a.importCmd(),
		a.exportCmd(),
		a.labsCmd(),
		a.chatCmd(),
		a.analyzeCmd(),
		a.imageCmd(),
		a.speakCmd(),
		a.archiveCmd(),
		a.adminCmd(),
		a.tuiCmd(),
		a.versionCmd(),
	)

	return root
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// works without a valid configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), a.buildInfo.String())
		},
	}
}

func (a *App) setup() error {
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	api, err := a.newAdapter(a.cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	a.api = api
	a.gate = session.NewGate(api, store.NewClientStorages(*a.cfg, a.logger).Sessions, a.logger)

	return nil
}

// requireSession restores the saved session for commands that need a user.
func (a *App) requireSession(ctx context.Context) error {
	if _, err := a.gate.Restore(ctx); err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return session.ErrNotLoggedIn
		}
		return err
	}
	return nil
}

// explain turns an expired token into advice and forgets the stale session.
func (a *App) explain(ctx context.Context, err error) error {
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}

	if logoutErr := a.gate.Logout(ctx); logoutErr != nil {
		a.logger.Err(logoutErr).Str("func", "*App.explain").Msg("error clearing stale session")
	}
	return errSessionExpired
}
