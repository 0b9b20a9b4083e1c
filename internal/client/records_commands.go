// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"text/tabwriter"

	"github.com/MKhiriev/dia-companion/internal/adapter"
	"github.com/MKhiriev/dia-companion/models"
	"github.com/spf13/cobra"
)

// datetimeLayout matches the value of an HTML datetime-local input, the
// format the diary stores.
const datetimeLayout = "2006-01-02T15:04"

func (a *App) recordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Manage diary records",
	}

	cmd.AddCommand(a.recordsListCmd(), a.recordsAddCmd(), a.recordsEditCmd(), a.recordsDeleteCmd())
	return cmd
}

func (a *App) recordsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List diary records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			records, err := a.api.ListRecords(ctx)
			if err != nil {
				return a.explain(ctx, err)
			}

			return printRecords(cmd.OutOrStdout(), records)
		},
	}
}

// recordFlags are the measurement flags shared by add and edit. Only the
// flags given on the command line change a record.
type recordFlags struct {
	datetime            string
	glucose             float64
	systolic, diastolic int
	comment             string
}

func (f *recordFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.datetime, "datetime", "", "measurement time, "+datetimeLayout)
	flags.Float64Var(&f.glucose, "glucose", 0, "blood glucose, mmol/L")
	flags.IntVar(&f.systolic, "systolic", 0, "systolic pressure, mmHg")
	flags.IntVar(&f.diastolic, "diastolic", 0, "diastolic pressure, mmHg")
	flags.StringVar(&f.comment, "comment", "", "free text")
}

func (f *recordFlags) changed(cmd *cobra.Command) bool {
	flags := cmd.Flags()
	for _, name := range []string{"datetime", "glucose", "systolic", "diastolic", "comment"} {
		if flags.Changed(name) {
			return true
		}
	}
	return false
}

func (f *recordFlags) apply(cmd *cobra.Command, record *models.HealthRecord) {
	flags := cmd.Flags()
	if flags.Changed("datetime") {
		record.Datetime = f.datetime
	}
	if flags.Changed("glucose") {
		record.Glucose = &f.glucose
	}
	if flags.Changed("systolic") {
		record.Systolic = &f.systolic
	}
	if flags.Changed("diastolic") {
		record.Diastolic = &f.diastolic
	}
	if flags.Changed("comment") {
		record.Comment = f.comment
	}
}

func (a *App) recordsAddCmd() *cobra.Command {
	var f recordFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a diary record",
		Long:  "Add a diary record. The measurement time is now unless --datetime is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			record := models.HealthRecord{Datetime: a.now().Format(datetimeLayout)}
			f.apply(cmd, &record)
			if record.Glucose == nil && !record.HasPressure() {
				return errEmptyRecord
			}

			saved, err := a.api.AddRecord(ctx, record)
			if err != nil {
				return a.explain(ctx, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", saved.ID)
			return nil
		},
	}

	f.bind(cmd)
	return cmd
}

// recordsEditCmd changes the given fields of a record and keeps the rest.
func (a *App) recordsEditCmd() *cobra.Command {
	var f recordFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a diary record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}
			if !f.changed(cmd) {
				return errNothingToChange
			}

			records, err := a.api.ListRecords(ctx)
			if err != nil {
				return a.explain(ctx, err)
			}

			idx := slices.IndexFunc(records, func(r models.HealthRecord) bool { return r.ID == args[0] })
			if idx < 0 {
				return fmt.Errorf("%w: %s", errRecordNotFound, args[0])
			}

			record := records[idx]
			f.apply(cmd, &record)
			if record.Glucose == nil && !record.HasPressure() {
				return errEmptyRecord
			}

			saved, err := a.api.EditRecord(ctx, record)
			if err != nil {
				return a.explain(ctx, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", saved.ID)
			return nil
		},
	}

	f.bind(cmd)
	return cmd
}

func (a *App) recordsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a diary record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			if err := a.api.DeleteRecord(ctx, args[0]); err != nil {
				return a.explain(ctx, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func (a *App) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import diary records from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("error opening %s: %w", args[0], err)
			}
			defer file.Close()

			result, err := a.api.ImportRecords(ctx, file)
			if err != nil {
				return a.explain(ctx, err)
			}

			out := cmd.OutOrStdout()
			if result.Imported == 0 && result.Message != "" {
				fmt.Fprintln(out, result.Message)
			}
			fmt.Fprintf(out, "imported %d, duplicates %d, skipped %d\n", result.Imported, result.Duplicates, len(result.Skipped))
			for _, reason := range result.Skipped {
				fmt.Fprintf(out, "  %s\n", reason)
			}
			return nil
		},
	}
}

// exportCmd writes to stdout when the file is "-". An empty diary is
// refused and no file is left behind.
func (a *App) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export the diary as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			if args[0] == "-" {
				if err := a.api.ExportRecords(ctx, cmd.OutOrStdout()); err != nil {
					return a.explainExport(ctx, err)
				}
				return nil
			}

			file, err := os.OpenFile(args[0], os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
			if err != nil {
				return fmt.Errorf("error creating %s: %w", args[0], err)
			}

			if err = a.api.ExportRecords(ctx, file); err != nil {
				file.Close()
				_ = os.Remove(args[0])
				return a.explainExport(ctx, err)
			}
			if err = file.Close(); err != nil {
				return fmt.Errorf("error writing %s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", args[0])
			return nil
		},
	}
}

func (a *App) explainExport(ctx context.Context, err error) error {
	if errors.Is(err, adapter.ErrNotFound) {
		return errNoDataToExport
	}
	return a.explain(ctx, err)
}

func printRecords(w io.Writer, records []models.HealthRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "no records")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATETIME\tGLUCOSE\tPRESSURE\tCOMMENT")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Datetime, formatGlucose(r), formatPressure(r), r.Comment)
	}
	return tw.Flush()
}

func formatGlucose(r models.HealthRecord) string {
	if r.Glucose == nil {
		return "-"
	}
	return strconv.FormatFloat(*r.Glucose, 'f', -1, 64)
}

func formatPressure(r models.HealthRecord) string {
	if !r.HasPressure() {
		return "-"
	}
	return fmt.Sprintf("%d/%d", *r.Systolic, *r.Diastolic)
}
