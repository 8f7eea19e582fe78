// Package server exposes the solver over HTTP and WebSocket.
package server

import (
	"hash/maphash"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/gorilla/schema"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubesolver/internal/app/storage"
)

// Server holds the handler dependencies. A nil repository disables
// persistence; solves are still returned to the caller.
type Server struct {
	log      *logrus.Logger
	repo     *storage.SolveRepository
	decoder  *schema.Decoder
	upgrader websocket.Upgrader

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New creates a server.
func New(log *logrus.Logger, repo *storage.SolveRepository) *Server {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &Server{
		log:     log,
		repo:    repo,
		decoder: decoder,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		rng: rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(),
			new(maphash.Hash).Sum64(),
		)),
	}
}

// Handler returns the routed handler with CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/scramble", s.handleScramble)
	mux.HandleFunc("POST /api/solve", s.handleSolve)
	mux.HandleFunc("GET /api/session", s.handleSession)
	return corsMiddleware()(mux)
}

func corsMiddleware() func(http.Handler) http.Handler {
	options := cors.Options{
		AllowOriginFunc: func(string) bool { return true },
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
	return cors.New(options).Handler
}
