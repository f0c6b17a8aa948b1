// Package site serves the match selector page with the two team panels.
package site

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/okian/passnet/internal/domain/types"
	"github.com/okian/passnet/pkg/logger"
	"github.com/okian/passnet/pkg/metrics"
)

// Title of the page.
const Title = "Passing Networks"

// Error constants
var (
	ErrUnknownMatch = errors.New("unknown match")
)

// Dependencies lists what the page needs from the service.
type Dependencies interface {
	Matches(ctx context.Context) ([]types.MatchSummary, error)
}

// Register attaches the page and its static assets to mux.
func Register(_ context.Context, mux *http.ServeMux, deps Dependencies) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(FS())))
	mux.HandleFunc("/", NewRootHandler(deps).HandleRoot)
}

// RootHandler renders the selector page.
type RootHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewRootHandler creates a new root handler.
func NewRootHandler(deps Dependencies) *RootHandler {
	return &RootHandler{deps: deps, logger: logger.Get().Named("site")}
}

type indexPage struct {
	Title    string
	Matches  []types.MatchSummary
	Selected types.MatchSummary
}

type errorPage struct {
	Title   string
	Message string
}

// HandleRoot handles GET / requests. The "match" query parameter selects the
// match; without it the first match is shown.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		h.renderError(w, r, http.StatusNotFound, "Page not found.")
		return
	}

	matches, err := h.deps.Matches(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "cannot list matches", logger.Error(err))
		h.renderError(w, r, http.StatusBadGateway, "The match list is not available right now.")
		return
	}

	page := indexPage{Title: Title, Matches: matches}
	selected, err := selectMatch(matches, r.URL.Query().Get("match"))
	if err != nil {
		h.renderError(w, r, http.StatusNotFound, "Unknown match "+strconv.Quote(r.URL.Query().Get("match"))+".")
		return
	}
	page.Selected = selected

	h.render(w, r, http.StatusOK, "index.html.tmpl", page)
}

// selectMatch resolves the raw query value. An empty value picks the first
// match; an empty list yields the zero summary.
func selectMatch(matches []types.MatchSummary, raw string) (types.MatchSummary, error) {
	if raw == "" {
		if len(matches) == 0 {
			return types.MatchSummary{}, nil
		}
		return matches[0], nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return types.MatchSummary{}, ErrUnknownMatch
	}
	for _, m := range matches {
		if m.MatchID == id {
			return m, nil
		}
	}
	return types.MatchSummary{}, ErrUnknownMatch
}

func (h *RootHandler) renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.render(w, r, status, "notfound.html.tmpl", errorPage{Title: Title, Message: msg})
}

func (h *RootHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error(r.Context(), "template failed", logger.String("template", name), logger.Error(err))
		metrics.RecordErrorByComponent("site", "template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
