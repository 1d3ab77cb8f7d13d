package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fedora-infra/spechub/internal/config"
	"github.com/fedora-infra/spechub/internal/handler"
	"github.com/fedora-infra/spechub/internal/logger"
	"github.com/fedora-infra/spechub/internal/repository"
	"github.com/fedora-infra/spechub/internal/router"
	"github.com/fedora-infra/spechub/internal/service"
	"github.com/fedora-infra/spechub/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "spechub",
		Short:         "Project, fork and pull request server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Apply migrations, register root projects and serve the HTTP API",
			RunE:  func(cmd *cobra.Command, _ []string) error { return run(cmd.Context(), serve) },
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations",
			RunE:  func(cmd *cobra.Command, _ []string) error { return run(cmd.Context(), nil) },
		},
		&cobra.Command{
			Use:   "sync-roots",
			Short: "Register root projects found in the git folder",
			RunE:  func(cmd *cobra.Command, _ []string) error { return run(cmd.Context(), syncRoots) },
		},
	)
	return root
}

// app carries what every subcommand needs once the database is migrated.
type app struct {
	cfg *config.Config
	log *zap.SugaredLogger
	db  *sql.DB
}

func run(ctx context.Context, fn func(context.Context, *app) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := repository.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	version, err := repository.Migrate(ctx, db, cfg.Database.Driver)
	if err != nil {
		return err
	}
	log.Infow("database ready", "driver", cfg.Database.Driver, "schema_version", version)

	if fn == nil {
		return nil
	}
	return fn(ctx, &app{cfg: cfg, log: log, db: db})
}

func identityService(a *app) *service.IdentityService {
	return service.NewIdentityService(a.db, storage.New(a.log), service.NewPaths(a.cfg.Storage), a.log)
}

func syncRoots(ctx context.Context, a *app) error {
	n, err := identityService(a).RegisterRoots(ctx)
	if err != nil {
		return err
	}
	a.log.Infow("root projects registered", "count", n)
	return nil
}

func serve(ctx context.Context, a *app) error {
	repos := storage.New(a.log)
	paths := service.NewPaths(a.cfg.Storage)

	identity := service.NewIdentityService(a.db, repos, paths, a.log)
	if n, err := identity.RegisterRoots(ctx); err != nil {
		return err
	} else if n > 0 {
		a.log.Infow("root projects registered", "count", n)
	}

	forks := service.NewForkService(a.db, repos, paths, identity, a.log)
	prs := service.NewPRService(a.db, a.cfg.PullRequests, a.log)
	comments := service.NewCommentService(a.db, a.log)
	stats := service.NewStatsService(a.db)

	r := router.SetupRoutes(a.log, router.Handlers{
		Users:    handler.NewUserHandler(identity),
		Projects: handler.NewProjectHandler(identity, forks),
		PRs:      handler.NewPRHandler(prs, comments),
		Stats:    handler.NewStatsHandler(stats),
	})

	srv := &http.Server{
		Addr:    a.cfg.ServerAddr(),
		Handler: r,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Infow("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.log.Infow("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.log.Infow("server exited")
	return nil
}
