package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/SeamusWaldron/cubesolver"
)

// sessionCommand is one client message on a session socket.
type sessionCommand struct {
	Op     string `json:"op"`               // "apply", "scramble", "solve" or "reset"
	Moves  string `json:"moves,omitempty"`  // for "apply"
	Length int    `json:"length,omitempty"` // for "scramble"
}

// sessionState is sent after every command.
type sessionState struct {
	SessionID string  `json:"session_id"`
	Solved    bool    `json:"solved"`
	Progress  float64 `json:"progress"`
	MoveCount int     `json:"move_count"`
	Moves     string  `json:"moves,omitempty"`    // moves produced by this command
	Solution  string  `json:"solution,omitempty"` // for "solve"
	Error     string  `json:"error,omitempty"`
}

// handleSession runs an interactive cube session over a WebSocket.
// Each connection owns a fresh tracker; commands mutate it and every
// reply carries the resulting state.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	c, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Error("websocket upgrade failed")
		return
	}
	defer c.Close()

	sessionID := uuid.New().String()
	tracker := cubesolver.NewTracker()
	log := s.log.WithField("session_id", sessionID)
	log.Info("session opened")

	for {
		var cmd sessionCommand
		if err := c.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("session read failed")
			}
			break
		}

		resp := s.runCommand(r.Context(), tracker, cmd)
		resp.SessionID = sessionID
		if err := c.WriteJSON(resp); err != nil {
			log.WithError(err).Warn("session write failed")
			break
		}
	}
	log.Info("session closed")
}

func (s *Server) runCommand(ctx context.Context, tracker *cubesolver.Tracker, cmd sessionCommand) sessionState {
	resp := sessionState{}

	switch cmd.Op {
	case "apply":
		if err := tracker.ApplyNotation(cmd.Moves); err != nil {
			resp.Error = err.Error()
		} else {
			resp.Moves = cmd.Moves
		}
	case "scramble":
		length := cmd.Length
		if length <= 0 {
			length = defaultScrambleLength
		}
		if length > maxScrambleLength {
			resp.Error = "scramble length too large"
			break
		}
		s.rngMu.Lock()
		moves := tracker.Scramble(s.rng, length)
		s.rngMu.Unlock()
		resp.Moves = cubesolver.FormatMoves(moves)
	case "solve":
		solution, err := tracker.Solve(ctx)
		if err != nil {
			resp.Error = err.Error()
			break
		}
		resp.Solution = cubesolver.FormatMoves(solution)
	case "reset":
		tracker.Reset()
	default:
		resp.Error = "unknown op: " + cmd.Op
	}

	resp.Solved = tracker.IsSolved()
	resp.Progress = tracker.Progress()
	resp.MoveCount = len(tracker.Moves())
	return resp
}
