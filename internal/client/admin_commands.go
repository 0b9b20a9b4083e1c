package client

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *App) adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator tools",
	}

	users := &cobra.Command{
		Use:   "users",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireAdmin(ctx); err != nil {
				return err
			}

			list, err := a.api.ListUsers(ctx)
			if err != nil {
				return a.explain(ctx, err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "EMAIL\tROLE")
			for _, u := range list {
				fmt.Fprintf(tw, "%s\t%s\n", u.Email, u.Role)
			}
			return tw.Flush()
		},
	}

	users.AddCommand(&cobra.Command{
		Use:   "delete <email>",
		Short: "Delete an account and all of its data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireAdmin(ctx); err != nil {
				return err
			}

			if err := a.api.DeleteUser(ctx, args[0]); err != nil {
				return a.explain(ctx, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(users)
	return cmd
}

// requireAdmin checks the role saved with the session. The server checks
// it again.
func (a *App) requireAdmin(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	user, err := a.gate.User()
	if err != nil {
		return err
	}
	if !user.IsAdmin() {
		return errAdminOnly
	}
	return nil
}
