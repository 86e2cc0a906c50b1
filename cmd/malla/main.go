package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/malla/internal/api"
	"github.com/alexanderramin/malla/internal/cli"
	"github.com/alexanderramin/malla/internal/config"
	"github.com/alexanderramin/malla/internal/curriculum"
	"github.com/alexanderramin/malla/internal/db"
	"github.com/alexanderramin/malla/internal/logger"
	"github.com/alexanderramin/malla/internal/repository"
	"github.com/alexanderramin/malla/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logOut := logger.NewDivertableWriter(stderr)
	logCfg := cfg.LoggerConfig()
	logCfg.Output = logOut
	log := logger.Configure(logCfg)

	app := &cli.App{
		CatalogPath: cfg.Catalog.Path,
		Addr:        cfg.Addr(),
		DivertLogs:  logOut.Divert,
	}

	// Forms and the live board need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	// The catalog and database are only opened for commands that use them,
	// so `check` can still report on a catalog that does not load.
	app.Bootstrap = func(ctx context.Context) error {
		graph, err := service.LoadCurriculum(cfg.Catalog.Path, log)
		if err != nil {
			return err
		}
		database, err = db.OpenDB(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		wireServices(app, cfg, log, graph, database)
		return nil
	}

	rootCmd := cli.NewRootCmd(app)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

func wireServices(app *cli.App, cfg *config.Config, log zerolog.Logger, graph *curriculum.Graph, database *sql.DB) {
	approvalRepo := repository.NewSQLiteApprovalRepo(database)
	nameRepo := repository.NewSQLiteCustomNameRepo(database)
	prefRepo := repository.NewSQLitePreferenceRepo(database)
	gradeRepo := repository.NewSQLiteGradeRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	// Per-call logging is opt-in; by default mutations stay quiet on stderr.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.Logging.UseCases {
		observer = service.NewLogUseCaseObserver(log)
	}

	catalogSvc := service.NewCatalogService(graph)
	app.Catalog = catalogSvc
	app.Progress = service.NewProgressService(graph, approvalRepo, nameRepo, prefRepo, uow, observer)
	app.Menciones = service.NewMencionService(prefRepo, observer)
	app.Grades = service.NewGradeService(graph, gradeRepo, uow, observer)
	app.Assistant = service.NewAssistantService(graph.Catalog())
	app.Serve = func(ctx context.Context, addr string) error {
		srv := api.NewServer(api.Options{
			Addr:    addr,
			Mode:    cfg.Server.Mode,
			Logger:  log,
			Catalog: catalogSvc,
		})
		return srv.Run(ctx)
	}
}
