package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/plus3/diceescape/score"
	"github.com/sirupsen/logrus"
)

const maxTop = 100

func openStore(ctx context.Context, backend, dsn string) (*score.Store, error) {
	switch backend {
	case score.KindSQLite:
		return score.OpenSQLite(ctx, dsn)
	case score.KindPostgres:
		return score.OpenPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

type topEntry struct {
	Player string `json:"player"`
	Score  int    `json:"score"`
	Level  int    `json:"level"`
	Won    bool   `json:"won"`
}

// newServer routes websocket submissions on /scores and the high-score table
// on /top.
func newServer(store *score.Store, log logrus.FieldLogger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/scores", score.NewHandler(store, log))
	mux.HandleFunc("GET /top", func(rw http.ResponseWriter, r *http.Request) {
		n := 10
		if v := r.URL.Query().Get("n"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed < 1 {
				http.Error(rw, "n must be a positive integer", http.StatusBadRequest)
				return
			}
			n = min(parsed, maxTop)
		}

		results, err := store.Top(r.Context(), n)
		if err != nil {
			log.WithError(err).Warn("Loading high scores failed")
			http.Error(rw, "high scores unavailable", http.StatusInternalServerError)
			return
		}
		entries := make([]topEntry, len(results))
		for i, res := range results {
			entries[i] = topEntry{Player: res.Player, Score: res.Score, Level: res.Level, Won: res.Won}
		}
		rw.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(rw).Encode(entries); err != nil {
			log.WithError(err).Debug("Writing high scores failed")
		}
	})
	return mux
}
