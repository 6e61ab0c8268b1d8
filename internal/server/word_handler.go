// Package server exposes the word resolver over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/at-ishikawa/wotd/internal/dictionary"
	"github.com/at-ishikawa/wotd/internal/history"
	"github.com/at-ishikawa/wotd/internal/resolver"
)

//go:generate mockgen -source=word_handler.go -destination=../mocks/server/mock_word_handler.go -package=mock_server

type WordResolver interface {
	Resolve(ctx context.Context, word string) (dictionary.WordRecord, error)
	ResolveDailyWord(ctx context.Context) (dictionary.WordRecord, error)
	ResolveRandomWord(ctx context.Context, exclude string) (dictionary.WordRecord, error)
	History(ctx context.Context) []history.Entry
}

type errorResponse struct {
	Error string `json:"error"`
}

// WordHandler serves words and history as JSON.
type WordHandler struct {
	resolver WordResolver
}

func NewWordHandler(resolver WordResolver) *WordHandler {
	return &WordHandler{resolver: resolver}
}

// Register adds the routes under /api to mux.
func (h *WordHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/words/today", h.today)
	mux.HandleFunc("GET /api/words/random", h.random)
	mux.HandleFunc("GET /api/words/{word}", h.word)
	mux.HandleFunc("GET /api/history", h.history)
}

func (h *WordHandler) today(w http.ResponseWriter, r *http.Request) {
	record, err := h.resolver.ResolveDailyWord(r.Context())
	h.writeRecord(w, record, err)
}

func (h *WordHandler) random(w http.ResponseWriter, r *http.Request) {
	record, err := h.resolver.ResolveRandomWord(r.Context(), r.URL.Query().Get("exclude"))
	h.writeRecord(w, record, err)
}

func (h *WordHandler) word(w http.ResponseWriter, r *http.Request) {
	record, err := h.resolver.Resolve(r.Context(), r.PathValue("word"))
	h.writeRecord(w, record, err)
}

func (h *WordHandler) history(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.resolver.History(r.Context()))
}

func (h *WordHandler) writeRecord(w http.ResponseWriter, record dictionary.WordRecord, err error) {
	if err != nil {
		slog.Default().Error("failed to resolve word",
			"error", err,
			"notFound", errors.Is(err, dictionary.ErrNotFound))
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: resolver.FailureMessage})
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Debug("failed to write response", "error", err)
	}
}
