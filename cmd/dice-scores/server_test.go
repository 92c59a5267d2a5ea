package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/plus3/diceescape/game"
	"github.com/plus3/diceescape/score"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := openStore(context.Background(), score.KindSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	log, _ := test.NewNullLogger()
	srv := httptest.NewServer(newServer(store, log))
	t.Cleanup(srv.Close)
	return srv
}

func TestServerStoresSubmissions(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	ws := score.NewWebsocketSubmitter("ws" + strings.TrimPrefix(srv.URL, "http") + "/scores")
	defer ws.Close()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, ws.Submit(ctx, game.Result{Player: "ann", Score: 300, Level: 3, At: at}))
	require.NoError(t, ws.Submit(ctx, game.Result{Player: "bob", Score: 900, Level: 5, Won: true, At: at}))

	resp, err := http.Get(srv.URL + "/top?n=1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var top []topEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&top))
	assert.Equal(t, []topEntry{{Player: "bob", Score: 900, Level: 5, Won: true}}, top)
}

func TestServerTopBadCount(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/top?n=zero")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	_, err := openStore(context.Background(), "redis", "x")
	assert.ErrorContains(t, err, "unknown store backend")
}
