// Package server is the request/reply boundary in front of the pipeline.
// It never surfaces a hard failure: whatever happens inside, the caller
// receives HTTP 200 with a best-effort or apologetic message body.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	logx "github.com/tanpawarit/telecom-support-agent/pkg/logger"
)

const genericFailureReply = "Something went wrong while handling your message. Please try again in a moment."

// Responder is what the boundary needs from the pipeline.
type Responder interface {
	HandleMessage(ctx context.Context, userInput string) (string, error)
}

type Config struct {
	Port int `envconfig:"PORT" split_words:"true" default:"8080"`
}

type chatRequest struct {
	UserInput string `json:"user_input"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type Server struct {
	router   *chi.Mux
	port     int
	pipeline Responder
}

func New(pipeline Responder, cfg Config) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	s := &Server{
		router:   router,
		port:     cfg.Port,
		pipeline: pipeline,
	}

	router.Get("/health", s.health)
	router.Post("/chat", s.chat)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	logger := logx.Component("server")
	logger.Info().Str("addr", addr).Msg("http server starting")
	return http.ListenAndServe(addr, s.router)
}

// Handler exposes the mux for tests and custom listeners.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	logger := logx.Component("server").With().Str("request_id", uuid.NewString()).Logger()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("malformed chat request body")
		writeJSON(w, chatResponse{Response: genericFailureReply})
		return
	}

	reply, err := s.pipeline.HandleMessage(r.Context(), req.UserInput)
	if err != nil {
		// Fatal pipeline errors stay in the log; the caller gets a generic
		// message, never raw internal error text.
		logger.Error().Err(err).Msg("pipeline failed")
		writeJSON(w, chatResponse{Response: genericFailureReply})
		return
	}

	logger.Debug().Msg("chat handled")
	writeJSON(w, chatResponse{Response: reply})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
