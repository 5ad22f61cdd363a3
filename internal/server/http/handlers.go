package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"geo/internal/geo"
	"geo/internal/server/game"
)

var (
	errIllegalMove = errors.New("illegal move")
	errNoHistory   = errors.New("nothing to undo")
	errBadRequest  = errors.New("bad request")
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games *game.Manager
}

func NewHandler(m *game.Manager) *Handler {
	if m == nil {
		m = game.NewManager()
	}
	return &Handler{games: m}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var fn func(http.ResponseWriter, *http.Request)
	switch r.URL.Path {
	case "/api/new_game":
		fn = h.handleNewGame
	case "/api/state":
		fn = h.handleState
	case "/api/play":
		fn = h.handlePlay
	case "/api/undo":
		fn = h.handleUndo
	case "/api/load":
		fn = h.handleLoad
	case "/api/history":
		fn = h.handleHistory
	default:
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	fn(w, r)
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if !decode(w, r, &req) {
		return
	}
	s, err := h.games.NewGame(req.GFEN)
	if err != nil {
		writeError(w, err)
		return
	}

	var resp NewGameResponse
	s.Do(func(g *geo.Game) error {
		resp = NewGameResponse{GameID: s.ID, State: stateOf(g)}
		return nil
	})
	log.Printf("new game %s", s.ID)
	writeJSON(w, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	var resp StateDTO
	err := h.games.Update(req.GameID, func(g *geo.Game) error {
		resp = stateOf(g)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Move == nil && req.SAN == "" {
		writeError(w, errBadRequest)
		return
	}

	var resp MoveResponse
	err := h.games.Update(req.GameID, func(g *geo.Game) error {
		var (
			res geo.MoveResult
			ok  bool
		)
		if req.Move != nil {
			res, ok = g.Move(*req.Move)
		} else {
			res, ok = g.MoveSAN(req.SAN)
		}
		if !ok {
			return errIllegalMove
		}
		resp = MoveResponse{Move: res, State: stateOf(g)}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp)
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	var resp MoveResponse
	err := h.games.Update(req.GameID, func(g *geo.Game) error {
		res, ok := g.Undo()
		if !ok {
			return errNoHistory
		}
		resp = MoveResponse{Move: res, State: stateOf(g)}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp)
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req LoadRequest
	if !decode(w, r, &req) {
		return
	}
	var resp StateDTO
	err := h.games.Update(req.GameID, func(g *geo.Game) error {
		if err := g.Load(req.GFEN); err != nil {
			return err
		}
		resp = stateOf(g)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	var req HistoryRequest
	if !decode(w, r, &req) {
		return
	}
	var resp HistoryResponse
	err := h.games.Update(req.GameID, func(g *geo.Game) error {
		if req.Verbose {
			resp.Verbose = g.VerboseHistory()
			resp.Moves = make([]string, len(resp.Verbose))
			for i, m := range resp.Verbose {
				resp.Moves[i] = m.Notation
			}
		} else {
			resp.Moves = g.History()
		}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, errNoHistory):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, errIllegalMove), errors.Is(err, errBadRequest), errors.Is(err, geo.ErrInvalidGFEN):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Println("request failed:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
