package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpadapter "workorders/internal/adapters/in/http"
	"workorders/internal/adapters/out/seed"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var withSeed bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and scheduled jobs",
	RunE: func(c *cobra.Command, _ []string) error {
		config, app, err := bootstrap()
		if err != nil {
			return err
		}

		if err = app.Migrate(); err != nil {
			return fmt.Errorf("migrating schema: %w", err)
		}

		ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if withSeed {
			file, readErr := seed.Read(config.SeedFile)
			if readErr != nil {
				return readErr
			}
			if _, err = app.CreateSeedLoader().Load(ctx, file); err != nil {
				return fmt.Errorf("seeding: %w", err)
			}
		}

		jobManager := app.CreateJobManager()
		if err = jobManager.StartAll(); err != nil {
			return err
		}
		defer jobManager.StopAll()

		e, err := httpadapter.NewEcho(app.CreateHTTPServer())
		if err != nil {
			return err
		}
		e.Logger.SetLevel(log.INFO)

		go func() {
			if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); startErr != nil &&
				!errors.Is(startErr, http.ErrServerClosed) {
				e.Logger.Fatal(startErr)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&withSeed, "seed", false, "load the seed file before serving")
}
