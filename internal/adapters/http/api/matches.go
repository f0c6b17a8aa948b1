package api

import (
	"context"
	"net/http"

	"github.com/okian/passnet/internal/domain/types"
	"github.com/okian/passnet/pkg/logger"
)

// MatchesDependencies defines the interface for listing matches.
type MatchesDependencies interface {
	Matches(ctx context.Context) ([]types.MatchSummary, error)
}

// MatchesHandler handles match list requests.
type MatchesHandler struct {
	deps   MatchesDependencies
	logger logger.Logger
}

// NewMatchesHandler creates a new matches handler.
func NewMatchesHandler(deps MatchesDependencies, log logger.Logger) *MatchesHandler {
	return &MatchesHandler{deps: deps, logger: log}
}

// HandleGetMatches handles GET /matches requests.
func (h *MatchesHandler) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	matches, err := h.deps.Matches(r.Context())
	if err != nil {
		writeClassified(r.Context(), h.logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}
