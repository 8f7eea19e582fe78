package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/app/server"
	"github.com/SeamusWaldron/cubesolver/internal/app/storage"
)

var (
	serveAddr   string
	serveNoSave bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the solver as an HTTP service.

Endpoints:
  GET  /api/health    health check
  GET  /api/scramble  random scramble (?length=N)
  POST /api/solve     solve a scramble ({"scramble": "R U ..."})
  GET  /api/session   interactive WebSocket session`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().BoolVar(&serveNoSave, "no-save", false, "Do not persist solves")
}

func runServe(cmd *cobra.Command, args []string) error {
	var repo *storage.SolveRepository
	if !serveNoSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		repo = storage.NewSolveRepository(db)
		log.WithField("db", db.Path()).Info("persisting solves")
	}

	srv := &http.Server{
		Addr:    serveAddr,
		Handler: server.New(log, repo).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", serveAddr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-cmd.Context().Done():
		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
