// Command dice-scores is the score service game clients submit to with
// DICE_SCORE_BACKEND=websocket. Results are kept in SQLite or Postgres.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plus3/diceescape/logger"
	"github.com/plus3/diceescape/score"
)

func main() {
	addr := flag.String("addr", ":8090", "Address to listen on.")
	backend := flag.String("backend", score.KindSQLite, "Database backend, sqlite or postgres.")
	dsn := flag.String("dsn", os.Getenv("DICE_DATABASE_DSN"), "Database DSN; a file path for sqlite.")
	logLevel := flag.String("log-level", "info", "Log level.")
	flag.Parse()

	log := logger.New(os.Stderr, *logLevel, "text")
	if *dsn == "" {
		log.Fatal("A database DSN is required")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := openStore(openCtx, *backend, *dsn)
	cancel()
	if err != nil {
		log.WithError(err).Fatal("Failed to open score store")
	}
	defer store.Close()

	srv := &http.Server{
		Addr:              *addr,
		Handler:           newServer(store, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("Shutdown failed")
		}
	}()

	log.WithField("addr", *addr).WithField("backend", *backend).Info("Serving scores")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("Server failed")
	}
	log.Info("Score service stopped")
}
