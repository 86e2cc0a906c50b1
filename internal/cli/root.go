package cli

import (
	"context"

	"github.com/alexanderramin/malla/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Catalog   service.CatalogService
	Progress  service.ProgressService
	Menciones service.MencionService
	Grades    service.GradeService
	Assistant service.AssistantService

	// CatalogPath is the catalog file in use. Empty means the embedded one.
	CatalogPath string
	// Addr is the default listen address of `serve`.
	Addr string
	// Serve runs the HTTP API on addr until ctx is cancelled.
	Serve func(ctx context.Context, addr string) error

	// IsInteractive reports whether stdin is a terminal. Forms and the
	// live board are only offered when it returns true.
	IsInteractive func() bool

	// Bootstrap loads the catalog and opens the database, filling in the
	// services above. It runs before every command not marked with
	// skipBootstrap. Nil means the services are already wired.
	Bootstrap func(ctx context.Context) error
	// DivertLogs holds log output back while the board owns the screen.
	// The returned func releases it.
	DivertLogs func() (restore func())
}

// skipBootstrap marks commands that must run even when the configured
// catalog does not load.
const skipBootstrap = "malla.skip-bootstrap"

func (a *App) bootstrap(cmd *cobra.Command) error {
	if a.Bootstrap == nil {
		return nil
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipBootstrap] == "true" {
			return nil
		}
	}
	switch cmd.Name() {
	case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return nil
	}
	return a.Bootstrap(cmd.Context())
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "malla" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "malla",
		Short:         "Curriculum tracker: prerequisites, progress and grades",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.bootstrap(cmd)
		},
	}

	root.AddCommand(
		newCoursesCmd(app),
		newShowCmd(app),
		newApproveCmd(app),
		newUnapproveCmd(app),
		newToggleCmd(app),
		newResetCmd(app),
		newStatusCmd(app),
		newNextCmd(app),
		newBoardCmd(app),
		newRenameCmd(app),
		newMencionCmd(app),
		newGradesCmd(app),
		newAskCmd(app),
		newCheckCmd(app),
		newServeCmd(app),
	)

	return root
}

// addSemesterFlag registers the shared --semester/-s flag.
func addSemesterFlag(fs *pflag.FlagSet, v *int, usage string) {
	fs.IntVarP(v, "semester", "s", 0, usage)
}
