package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/flashcards/internal/card"
	"github.com/arcanaland/flashcards/internal/catalog"
	"github.com/arcanaland/flashcards/internal/deck"
	"github.com/arcanaland/flashcards/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	decks := append(catalog.Builtin(),
		deck.Deck{ID: "x", Name: "One", Cards: []card.Card{{Term: "א", Definition: "Alef"}}},
		deck.Deck{ID: "empty", Name: "Empty"},
	)
	c, err := catalog.New(decks...)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(c, logger, session.WithRand(rand.New(rand.NewPCG(7, 7)))).Handler()
}

func call(t *testing.T, h http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func TestHealth(t *testing.T) {
	code, body := call(t, newTestServer(t), http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestListDecks(t *testing.T) {
	code, body := call(t, newTestServer(t), http.MethodGet, "/api/decks", "")
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 5, body["count"])
}

func TestSessionFlow(t *testing.T) {
	h := newTestServer(t)

	code, body := call(t, h, http.MethodGet, "/api/session", "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "no_active_deck", body["code"])

	code, body = call(t, h, http.MethodPost, "/api/session", `{"deck":"x"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "active", body["status"])
	assert.Equal(t, "Alef", body["prompt"])
	assert.Equal(t, "א", body["answer"])
	assert.Equal(t, "1 : 1", body["counter"])
	assert.Equal(t, card.SizeGlyph, body["answer_size"])
	assert.Equal(t, false, body["revealed"])
	firstID := body["session_id"]
	assert.NotEmpty(t, firstID)

	code, body = call(t, h, http.MethodPost, "/api/session/reveal", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["revealed"])
	assert.Equal(t, firstID, body["session_id"])

	code, body = call(t, h, http.MethodPost, "/api/session/next", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "completed", body["status"])
	assert.Equal(t, true, body["can_restart"])

	code, body = call(t, h, http.MethodPost, "/api/session/restart", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "active", body["status"])
	assert.EqualValues(t, 1, body["position"])
	assert.NotEqual(t, firstID, body["session_id"])

	code, body = call(t, h, http.MethodGet, "/api/session", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "x", body["deck"])
}

func TestStartErrors(t *testing.T) {
	h := newTestServer(t)

	code, body := call(t, h, http.MethodPost, "/api/session", `{"deck":"nope"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "unknown_deck", body["code"])

	code, _ = call(t, h, http.MethodPost, "/api/session", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = call(t, h, http.MethodPost, "/api/session/next", "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "no_active_deck", body["code"])
}

func TestUnknownDeckKeepsSession(t *testing.T) {
	h := newTestServer(t)

	_, started := call(t, h, http.MethodPost, "/api/session", `{"deck":"geometry-postulates"}`)
	code, _ := call(t, h, http.MethodPost, "/api/session", `{"deck":"nope"}`)
	require.Equal(t, http.StatusNotFound, code)

	_, current := call(t, h, http.MethodGet, "/api/session", "")
	assert.Equal(t, started["session_id"], current["session_id"])
	assert.Equal(t, started["prompt"], current["prompt"])
	assert.Equal(t, true, current["reversed"])
}

func TestEmptyDeck(t *testing.T) {
	code, body := call(t, newTestServer(t), http.MethodPost, "/api/session", `{"deck":"empty"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "completed", body["status"])
	assert.Equal(t, "0 : 0", body["counter"])
	assert.Equal(t, false, body["can_restart"])
	_, hasSize := body["answer_size"]
	assert.False(t, hasSize)
}
