package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zaoqi-icu/negoprep/internal/domain/negotiation"
	apperrors "github.com/zaoqi-icu/negoprep/pkg/errors"
)

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func newReportCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render and export the preparation report",
	}
	cmd.AddCommand(
		newReportShowCommand(opts),
		newReportExportCommand(opts),
	)
	return cmd
}

func newReportShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the report HTML to stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if opts.remote() {
				html, err := opts.client().GetReportHTML(ctx)
				if err != nil {
					return err
				}
				cmd.Println(html)
				return nil
			}
			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			html, err := env.gen.Render(env.store.Get())
			if err != nil {
				return err
			}
			cmd.Println(html)
			return nil
		},
	}
}

func newReportExportCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Capture the report as a PNG or PDF file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "" && format != "png" && format != "pdf" {
				return apperrors.Newf(apperrors.ErrCodeExportFormatUnsupported, "unsupported export format %q", format)
			}

			ctx := cmd.Context()
			if opts.remote() {
				result, err := opts.client().ExportReport(ctx, format)
				if err != nil {
					return err
				}
				return printJSON(cmd, result)
			}

			env, err := opts.local(ctx)
			if err != nil {
				return err
			}
			data := env.store.Get()
			target := data.ReportSettings.Format
			if format != "" {
				target = negotiation.ExportFormat(format)
			}

			html, err := env.gen.Render(data)
			if err != nil {
				return err
			}
			result, err := env.exporter.Export(ctx, html, target)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "png|pdf; empty uses the stored report setting")
	return cmd
}
