package client

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/dia-companion/models"
	"github.com/spf13/cobra"
)

// previewWidth is the number of runes of a long text shown in a list.
const previewWidth = 60

// archiveCmd browses the append-only archives. Each archive lists its
// items when called without a subcommand.
func (a *App) archiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Browse saved analyses, chats and record edits",
	}

	cmd.AddCommand(a.archiveAnalysesCmd(), a.archiveChatsCmd(), a.archiveEditsCmd())
	return cmd
}

func (a *App) archiveAnalysesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyses",
		Short: "List saved analyses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			analyses, err := a.api.ListAnalyses(ctx)
			if err != nil {
				return a.explain(ctx, err)
			}
			if len(analyses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no saved analyses")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDATETIME\tSOURCES\tTEXT")
			for _, item := range analyses {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", item.ID, item.Datetime, len(item.Analysis.Sources), preview(item.Analysis.Text))
			}
			return tw.Flush()
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			analyses, err := a.api.ListAnalyses(ctx)
			if err != nil {
				return a.explain(ctx, err)
			}

			idx := slices.IndexFunc(analyses, func(item models.ArchivedAnalysis) bool { return item.ID == args[0] })
			if idx < 0 {
				return fmt.Errorf("%w: %s", errArchiveItemNotFound, args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", analyses[idx].Datetime)
			printAnalysis(cmd.OutOrStdout(), analyses[idx].Analysis)
			return nil
		},
	}

	cmd.AddCommand(show, a.archiveDeleteCmd("analysis", func(ctx context.Context, id string) error {
		return a.api.DeleteAnalysis(ctx, id)
	}))
	return cmd
}

func (a *App) archiveChatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chats",
		Short: "List saved conversations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			chats, err := a.api.ListChats(ctx)
			if err != nil {
				return a.explain(ctx, err)
			}
			if len(chats) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no saved chats")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDATETIME\tMESSAGES\tFIRST QUESTION")
			for _, chat := range chats {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", chat.ID, chat.Datetime, len(chat.Messages), preview(firstQuestion(chat.Messages)))
			}
			return tw.Flush()
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			chats, err := a.api.ListChats(ctx)
			if err != nil {
				return a.explain(ctx, err)
			}

			idx := slices.IndexFunc(chats, func(item models.ArchivedChat) bool { return item.ID == args[0] })
			if idx < 0 {
				return fmt.Errorf("%w: %s", errArchiveItemNotFound, args[0])
			}

			out := cmd.OutOrStdout()
			for _, msg := range chats[idx].Messages {
				fmt.Fprintf(out, "%s: %s\n", msg.Role, msg.Text)
			}
			return nil
		},
	}

	cmd.AddCommand(show, a.archiveDeleteCmd("chat", func(ctx context.Context, id string) error {
		return a.api.DeleteChat(ctx, id)
	}))
	return cmd
}

func (a *App) archiveEditsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edits",
		Short: "List the history of record edits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			edits, err := a.api.ListEdits(ctx)
			if err != nil {
				return a.explain(ctx, err)
			}
			if len(edits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no record edits")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tEDITED\tRECORD\tBEFORE\tAFTER")
			for _, e := range edits {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Datetime, e.RecordID, summarize(e.OriginalRecord), summarize(e.UpdatedRecord))
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(a.archiveDeleteCmd("edit", func(ctx context.Context, id string) error {
		return a.api.DeleteEdit(ctx, id)
	}))
	return cmd
}

func (a *App) archiveDeleteCmd(kind string, del func(ctx context.Context, id string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved " + kind,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			if err := del(ctx, args[0]); err != nil {
				return a.explain(ctx, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

// preview returns the first line of text cut to previewWidth runes.
func preview(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	runes := []rune(line)
	if len(runes) <= previewWidth {
		return line
	}
	return string(runes[:previewWidth-1]) + "…"
}

func firstQuestion(messages []models.ChatMessage) string {
	for _, msg := range messages {
		if msg.Role == models.ChatRoleUser {
			return msg.Text
		}
	}
	return "-"
}

// summarize renders the measurements of a record on one line.
func summarize(r models.HealthRecord) string {
	parts := []string{r.Datetime}
	if r.Glucose != nil {
		parts = append(parts, formatGlucose(r)+" mmol/L")
	}
	if r.HasPressure() {
		parts = append(parts, formatPressure(r))
	}
	return strings.Join(parts, " ")
}
