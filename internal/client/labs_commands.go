package client

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/models"
	"github.com/spf13/cobra"
)

func (a *App) labsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labs",
		Short: "Manage uploaded lab results",
	}

	cmd.AddCommand(a.labsListCmd(), a.labsAddCmd(), a.labsDeleteCmd())
	return cmd
}

func (a *App) labsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List lab results, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			labs, err := a.api.ListLabResults(ctx)
			if err != nil {
				return a.explain(ctx, err)
			}

			return printLabResults(cmd.OutOrStdout(), labs)
		},
	}
}

func (a *App) labsAddCmd() *cobra.Command {
	var (
		labType  string
		datetime string
	)

	cmd := &cobra.Command{
		Use:   "add <image>",
		Short: "Upload an image of a lab result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			kind := models.LabResultType(labType)
			if !kind.IsValid() {
				return fmt.Errorf("%w: %q", errUnknownLabType, labType)
			}

			img, err := utils.ReadImageFile(args[0])
			if err != nil {
				return err
			}

			lab := models.LabResult{
				Datetime:    datetime,
				Type:        kind,
				FileName:    img.Name,
				FileType:    img.MIMEType,
				FileContent: img.Content,
			}
			if lab.Datetime == "" {
				lab.Datetime = a.now().Format(datetimeLayout)
			}

			saved, err := a.api.AddLabResult(ctx, lab)
			if err != nil {
				return a.explain(ctx, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s\n", saved.ID)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&labType, "type", string(models.LabResultOther), "blood, urine or other")
	flags.StringVar(&datetime, "datetime", "", "date of the analysis, "+datetimeLayout+"; now when omitted")

	return cmd
}

func (a *App) labsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a lab result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			if err := a.api.DeleteLabResult(ctx, args[0]); err != nil {
				return a.explain(ctx, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func printLabResults(w io.Writer, labs []models.LabResult) error {
	if len(labs) == 0 {
		_, err := fmt.Fprintln(w, "no lab results")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATETIME\tTYPE\tFILE")
	for _, l := range labs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.ID, l.Datetime, l.Type, l.FileName)
	}
	return tw.Flush()
}
