package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	storeControllers "github.com/junaidrashid-git/orbit-aether/controllers/store"
	"github.com/junaidrashid-git/orbit-aether/database"
	"github.com/junaidrashid-git/orbit-aether/routes"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an API server",
}

var serveOrbitCmd = &cobra.Command{
	Use:   "orbit",
	Short: "Serve the back-office API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context(), true, false)
	},
}

var serveAetherCmd = &cobra.Command{
	Use:   "aether",
	Short: "Serve the storefront API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context(), false, true)
	},
}

var serveAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Serve both APIs from one process",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context(), true, true)
	},
}

// serve runs the selected servers until SIGINT/SIGTERM or until one of them fails.
func serve(parent context.Context, orbit, aether bool) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var servers []*http.Server
	var names []string

	if orbit {
		db, err := prepareOrbit(cfg.Orbit, logger)
		if err != nil {
			return err
		}
		defer closeDB(db, logger)

		servers = append(servers, &http.Server{
			Addr:              ":" + cfg.Orbit.Port,
			Handler:           routes.NewOrbitRouter(db, cfg, logger),
			ReadHeaderTimeout: 10 * time.Second,
		})
		names = append(names, "orbit")

		if cfg.Orbit.BackupDir != "" {
			go database.StartDailyBackup(ctx, db, cfg.Orbit.BackupDir, cfg.Orbit.BackupRetention, cfg.Orbit.BackupHour, logger.Named("backup"))
		}
	}

	if aether {
		db, err := prepareAether(cfg.Aether, logger)
		if err != nil {
			return err
		}
		defer closeDB(db, logger)

		hub := storeControllers.NewHub(logger.Named("orders-ws"))
		servers = append(servers, &http.Server{
			Addr:              ":" + cfg.Aether.Port,
			Handler:           routes.NewAetherRouter(db, cfg, hub, logger),
			ReadHeaderTimeout: 10 * time.Second,
		})
		names = append(names, "aether")
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, srv := range servers {
		srv, name := srv, names[i]
		g.Go(func() error { return runServer(ctx, name, srv) })
	}
	return g.Wait()
}

// runServer serves until ctx is cancelled, then shuts the server down.
func runServer(ctx context.Context, name string, srv *http.Server) error {
	log := logger.With(zap.String("app", name), zap.String("addr", srv.Addr))

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		log.Error("server failed", zap.Error(err))
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
