package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubesolver"
)

const (
	defaultScrambleLength = 30
	maxScrambleLength     = 200
)

type scrambleParams struct {
	Length int `schema:"length"`
}

type scrambleResponse struct {
	Scramble string `json:"scramble"`
	Length   int    `json:"length"`
}

type solveRequest struct {
	Scramble string `json:"scramble"`
}

type solveResponse struct {
	SolveID    string `json:"solve_id,omitempty"`
	Scramble   string `json:"scramble"`
	Solution   string `json:"solution"`
	MoveCount  int    `json:"move_count"`
	DurationMs int64  `json:"duration_ms"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	var params scrambleParams
	if err := s.decoder.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if params.Length <= 0 {
		params.Length = defaultScrambleLength
	}
	if params.Length > maxScrambleLength {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	moves := s.randomScramble(params.Length)
	s.sendJSON(w, scrambleResponse{
		Scramble: cubesolver.FormatMoves(moves),
		Length:   len(moves),
	})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	state, err := cubesolver.Solved().ApplyNotation(req.Scramble)
	if err != nil {
		s.log.WithError(err).Warn("bad scramble")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}

	start := time.Now()
	solution, err := cubesolver.Solve(r.Context(), state)
	if err != nil {
		s.log.WithError(err).Error("solve failed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	elapsed := time.Since(start)

	resp := solveResponse{
		Scramble:   req.Scramble,
		Solution:   cubesolver.FormatMoves(solution),
		MoveCount:  len(solution),
		DurationMs: elapsed.Milliseconds(),
	}

	if s.repo != nil {
		id, err := s.repo.Save(resp.Scramble, resp.Solution, resp.MoveCount, elapsed, "api")
		if err != nil {
			s.log.WithError(err).Error("failed to save solve")
		} else {
			resp.SolveID = id
		}
	}

	s.log.WithFields(logrus.Fields{
		"scramble_len": len(req.Scramble),
		"move_count":   resp.MoveCount,
		"duration_ms":  resp.DurationMs,
	}).Info("solved")

	s.sendJSON(w, resp)
}

func (s *Server) randomScramble(length int) []cubesolver.Move {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	_, moves := cubesolver.Scramble(s.rng, length)
	return moves
}

func (s *Server) sendJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("failed to encode response")
	}
}
