package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/malla/internal/catalog"
	"github.com/alexanderramin/malla/internal/cli/formatter"
	"github.com/alexanderramin/malla/internal/service"
	"github.com/spf13/cobra"
)

// errCheckFailed makes `check` exit non-zero after printing its report.
var errCheckFailed = errors.New("catalog check failed")

func newCheckCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:         "check",
		Short:       "Check a catalog file for duplicate ids, unknown prerequisites and cycles",
		Annotations: map[string]string{skipBootstrap: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := file
			if path == "" {
				path = app.CatalogPath
			}

			var data []byte
			if path == "" {
				data = catalog.EmbeddedSource()
			} else {
				var err error
				if data, err = os.ReadFile(path); err != nil {
					return fmt.Errorf("reading catalog: %w", err)
				}
			}

			report := service.CheckSource(data)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIntegrityReport(report))
			if report.Fatal() {
				return errCheckFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Catalog JSON to check (default: the catalog in use)")

	return cmd
}
