package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/founderhub/internal/buildinfo"
	"github.com/dmitrijs2005/founderhub/internal/client/config"
)

// newApp is a test seam for NewApp.
var newApp = NewApp

// NewRootCommand builds the founderhub command tree. cfg holds the values
// loaded from defaults, JSON and the environment; flags parsed by cobra are
// written into it before any command runs.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "founderhub",
		Short:         "Command-line client for the FounderHub API",
		Long:          "founderhub starts an interactive shell for the FounderHub founder network.\nType 'help' inside the shell for the list of commands.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, cfg, func(ctx context.Context, a *App) error {
				return a.Run(ctx)
			})
		},
	}
	config.BindFlags(root.PersistentFlags(), cfg)

	root.AddCommand(
		&cobra.Command{
			Use:   "login",
			Short: "Log in and store the session (reads FOUNDERHUB_EMAIL and FOUNDERHUB_PASSWORD)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd, cfg, func(ctx context.Context, a *App) error { return a.Login(ctx) })
			},
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Forget the stored session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd, cfg, func(ctx context.Context, a *App) error { return a.Logout(ctx) })
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the stored session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd, cfg, func(ctx context.Context, a *App) error { return a.Status(ctx) })
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				buildinfo.PrintBuildData(cmd.OutOrStdout())
			},
		},
	)
	return root
}

func withApp(cmd *cobra.Command, cfg *config.Config, fn func(context.Context, *App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}
