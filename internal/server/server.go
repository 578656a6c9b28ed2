// Package server implements the public HTTP API for balsas.
//
// The API is intentionally small: one synthesis route, a static voice
// listing, and a health report. Swagger UI is served alongside for
// interactive exploration.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/audriusb/balsas/docs"
	"github.com/audriusb/balsas/internal/service"
	"github.com/audriusb/balsas/internal/synth"
)

// maxBodySize caps the synthesis request body. Text payloads are small;
// anything above this is a client error.
const maxBodySize = 1 << 20 // 1 MB

// Server is the public API HTTP server.
type Server struct {
	port   int
	svc    *service.Service
	server *http.Server
}

// New creates a new API server on the given port.
func New(port int, svc *service.Service) *Server {
	return &Server{port: port, svc: svc}
}

// ListenAndServe starts the API server and blocks until the context is
// cancelled, then drains gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /synthesize", s.handleSynthesize)
	mux.HandleFunc("GET /voices", s.handleVoices)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Swagger UI — serves the generated OpenAPI docs.
	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           withCORS(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("api server listening", "port", s.port)

	go func() {
		<-ctx.Done()
		slog.Info("api server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("api listen: %w", err)
	}
	return nil
}

// Close gracefully shuts down the HTTP server.
func (s *Server) Close() error {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}

// handleSynthesize processes a POST /synthesize request.
//
// @Summary     Synthesize Lithuanian speech
// @Description Forwards the text to the speech provider as SSML and returns
// @Description the synthesized audio base64-encoded in a JSON envelope.
// @Tags        synthesis
// @Accept      json
// @Produce     json
// @Param       request  body      service.SynthesizeRequest  true  "Text and optional voice/rate/pitch"
// @Success     200  {object}  service.SynthesizeResponse  "Base64-encoded audio"
// @Failure     400  {object}  server.ErrorResponse  "Invalid request body"
// @Failure     500  {object}  server.ErrorResponse  "Credential not configured or internal error"
// @Failure     502  {object}  server.ErrorResponse  "Provider unreachable"
// @Router      /synthesize [post]
func (s *Server) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	var req service.SynthesizeRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	resp, err := s.svc.Synthesize(r.Context(), req)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleVoices returns the static voice catalog.
//
// @Summary     List available voices
// @Tags        synthesis
// @Produce     json
// @Success     200  {object}  service.VoicesResponse
// @Router      /voices [get]
func (s *Server) handleVoices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Voices())
}

// handleHealth reports process health and credential presence.
//
// @Summary     Health check
// @Description Reports whether a speech credential is configured. Makes no
// @Description outbound call and does not validate the credential.
// @Tags        ops
// @Produce     json
// @Success     200  {object}  service.HealthStatus
// @Router      /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Health())
}

// ErrorResponse is the JSON envelope for failed requests.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// statusFor maps a synthesis error onto an HTTP status code. Provider
// rejections propagate the provider's own status.
func statusFor(err error) int {
	var rejected *synth.RejectedError
	var unavailable *synth.UnavailableError
	switch {
	case errors.Is(err, synth.ErrNotConfigured):
		return http.StatusInternalServerError
	case errors.As(err, &unavailable):
		return http.StatusBadGateway
	case errors.As(err, &rejected):
		return rejected.Status
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Success: false, Error: msg})
}

// withCORS applies a permissive CORS policy. Browser clients call the
// synthesis API directly from web pages.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
