package server

import (
	"context"
	"errors"
	"log"
	"net/http"
)

// Runner executes one publish job, streaming progress to logf. Satisfied by
// *pipeline.Pipeline.
type Runner interface {
	Run(ctx context.Context, logf func(string)) (string, error)
}

// Server exposes the trigger endpoint an external scheduler calls to start a
// run. It holds no run state: at most one run is expected in flight at a
// time, enforced by the scheduler, not here.
type Server struct {
	runner Runner
	secret string
	logger *log.Logger
}

func New(runner Runner, secret string, logger *log.Logger) (*Server, error) {
	if runner == nil {
		return nil, errors.New("pipeline runner required")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, secret: secret, logger: logger}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/run-blogger", s.handleRun)
	return mux
}

// handleRun starts a publish run and streams its log lines to the response
// as they happen, so a cron caller sees progress instead of a silent hang.
// Closing the socket cancels the run at the next collaborator call.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Query().Get("secret") != s.secret {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	streamLog := func(msg string) {
		s.logger.Print(msg)
		w.Write([]byte(msg + "\n"))
		if flusher != nil {
			flusher.Flush()
		}
	}

	streamLog("Starting the auto-blogger job")
	if link, err := s.runner.Run(r.Context(), streamLog); err != nil {
		streamLog("An error occurred: " + err.Error())
	} else {
		streamLog("Published: " + link)
	}
	streamLog("--- Process Finished ---")
}
