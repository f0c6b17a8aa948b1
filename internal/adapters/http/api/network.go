package api

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	service "github.com/okian/passnet/internal/app"
	"github.com/okian/passnet/internal/domain/model"
	"github.com/okian/passnet/internal/domain/network"
	"github.com/okian/passnet/internal/domain/types"
	"github.com/okian/passnet/pkg/logger"
)

const svgSuffix = ".svg"

// NetworkDependencies defines the interface for network operations.
type NetworkDependencies interface {
	Networks(ctx context.Context, id int) (model.Match, [2]service.TeamNetwork, error)
	RenderTeam(ctx context.Context, id int, side types.Side, w io.Writer) error
}

// NetworkHandler serves team networks as JSON or SVG.
type NetworkHandler struct {
	deps   NetworkDependencies
	logger logger.Logger
}

// NewNetworkHandler creates a new network handler.
func NewNetworkHandler(deps NetworkDependencies, log logger.Logger) *NetworkHandler {
	return &NetworkHandler{deps: deps, logger: log}
}

type networkResponse struct {
	Match types.MatchSummary `json:"match"`
	Teams []teamResponse     `json:"teams"`
}

type teamResponse struct {
	Side   string `json:"side"`
	Colour string `json:"colour"`
	network.Network
	Error *errorResponse `json:"error,omitempty"`
}

// HandleNetwork handles GET /network/{match_id} and
// GET /network/{match_id}/{home|away}.svg requests.
func (h *NetworkHandler) HandleNetwork(w http.ResponseWriter, r *http.Request) {
	const op = "api.network"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/network/"), "/")
	id, err := parseMatchID(parts[0])
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadMatchID, err))
		return
	}

	switch len(parts) {
	case 1:
		h.serveJSON(w, r, id)
	case 2:
		name, ok := strings.CutSuffix(parts[1], svgSuffix)
		if !ok {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		side, err := types.ParseSide(name)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		h.serveSVG(w, r, id, side)
	default:
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
	}
}

func (h *NetworkHandler) serveJSON(w http.ResponseWriter, r *http.Request, id int) {
	m, teams, err := h.deps.Networks(r.Context(), id)
	if err != nil {
		writeClassified(r.Context(), h.logger, w, err)
		return
	}

	resp := networkResponse{
		Match: m.Summary(),
		Teams: make([]teamResponse, 0, len(teams)),
	}
	for _, t := range teams {
		tr := teamResponse{
			Side:    t.Side.String(),
			Colour:  t.Colour,
			Network: t.Network,
		}
		if t.Err != nil {
			_, code := classify(t.Err)
			tr.Error = &errorResponse{Code: code, Message: t.Err.Error()}
		}
		resp.Teams = append(resp.Teams, tr)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *NetworkHandler) serveSVG(w http.ResponseWriter, r *http.Request, id int, side types.Side) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	if err := h.deps.RenderTeam(r.Context(), id, side, w); err != nil {
		w.Header().Del("Cache-Control")
		writeClassified(r.Context(), h.logger, w, err)
	}
}

func parseMatchID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, ErrBadMatchID
	}
	return id, nil
}
