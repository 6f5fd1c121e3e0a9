package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/edpay/internal/cli/formatter"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/alexanderramin/edpay/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import sessions from a CSV file",
		Long: "Import sessions from a CSV file with a header row naming any of\n" +
			"mentorId, mentorName, date, type, duration, ratePerHour. Missing\n" +
			"fields take defaults; no row is rejected. Use - to read stdin.",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireAdmin(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader
			if args[0] == "-" {
				r = cmd.InOrStdin()
			} else {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening %s: %w", args[0], err)
				}
				defer f.Close()
				r = f
			}

			result, err := app.Sessions.Import(cmd.Context(), r)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d sessions\n", len(result.Sessions))
			if len(result.UnknownMentors) > 0 {
				fmt.Fprintln(out, formatter.StyleYellow.Render(
					"Warning: no mentor record for "+strings.Join(result.UnknownMentors, ", ")))
			}
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var outPath string
	dateRange := newRangeValue(domain.RangeAll)

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Export sessions as CSV",
		Args:    cobra.NoArgs,
		PreRunE: requireAdmin(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" || outPath == "-" {
				_, err := app.Sessions.Export(cmd.Context(), cmd.OutOrStdout(), dateRange.Range(), app.now())
				return err
			}

			if info, err := os.Stat(outPath); err == nil && info.IsDir() {
				outPath = filepath.Join(outPath, importer.ExportFileName(app.now().Format("2006-01-02")))
			}
			n, err := exportToFile(cmd.Context(), app, outPath, dateRange.Range())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d sessions to %s\n", n, outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file, or a directory for sessions-export-<day>.csv (default stdout)")
	cmd.Flags().Var(dateRange, "range", "Date range: last7, last15, last30 or all")

	return cmd
}

// exportToFile writes the export to path, reporting a failed close.
func exportToFile(ctx context.Context, app *App, path string, r domain.DateRange) (n int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}
	defer closeInto(f, path, &err)
	return app.Sessions.Export(ctx, f, r, app.now())
}

// closeInto closes c and stores its error in *err unless *err is already set.
func closeInto(c io.Closer, path string, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("closing %s: %w", path, cerr)
	}
}
