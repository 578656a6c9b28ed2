// Package service implements the core synthesis pipeline.
//
// The service receives requests from the HTTP layer, gates them on the
// configured credential, runs them through the synthesizer backend, then
// wraps the audio in the base64 response envelope. The credential check
// always happens before any outbound call — this is an architectural
// invariant.
package service

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"time"

	"github.com/audriusb/balsas/internal/config"
	"github.com/audriusb/balsas/internal/metrics"
	"github.com/audriusb/balsas/internal/synth"
	"github.com/audriusb/balsas/internal/voice"
)

// SynthesizeRequest is the inbound JSON body for POST /synthesize.
type SynthesizeRequest struct {
	// Text is the plain text to synthesize.
	Text string `json:"text"`

	// Voice overrides the default voice (e.g., "lt-LT-OnaNeural").
	Voice string `json:"voice,omitempty"`

	// Rate is the prosody rate directive, passed through unchecked.
	Rate string `json:"rate,omitempty"`

	// Pitch is the prosody pitch directive, passed through unchecked.
	Pitch string `json:"pitch,omitempty"`
}

// SynthesizeResponse is the success envelope for POST /synthesize.
type SynthesizeResponse struct {
	Success bool `json:"success"`

	// AudioBase64 is the provider's audio bytes, base64-encoded.
	AudioBase64 string `json:"audio_base64"`

	// Format is the audio container format (e.g., "mp3").
	Format string `json:"format"`

	// SampleRate is the audio sample rate in Hz.
	SampleRate int `json:"sample_rate"`

	// Voice is the voice that produced the audio.
	Voice string `json:"voice"`
}

// setAudioBytes base64-encodes raw audio bytes into AudioBase64.
func (r *SynthesizeResponse) setAudioBytes(audio []byte) {
	r.AudioBase64 = base64.StdEncoding.EncodeToString(audio)
}

// VoicesResponse is the envelope for GET /voices.
type VoicesResponse struct {
	Voices []voice.Descriptor `json:"voices"`
}

// HealthStatus is the payload for GET /health.
type HealthStatus struct {
	Status          string `json:"status"`
	AzureConfigured bool   `json:"azure_configured"`
}

// Service is the synthesis pipeline behind the HTTP surface.
type Service struct {
	synthesizer       synth.Synthesizer
	defaults          config.SynthesisConfig
	credentialPresent bool
	metrics           *metrics.Metrics
}

// New creates a Service. The credential presence is captured once at startup
// from the resolved config; per-request environment reads are deliberately
// avoided.
func New(synthesizer synth.Synthesizer, cfg *config.Config, m *metrics.Metrics) *Service {
	return &Service{
		synthesizer:       synthesizer,
		defaults:          cfg.Synthesis,
		credentialPresent: cfg.CredentialPresent(),
		metrics:           m,
	}
}

// Synthesize processes a single request through the full pipeline.
func (s *Service) Synthesize(ctx context.Context, req SynthesizeRequest) (*SynthesizeResponse, error) {
	start := time.Now()

	if req.Voice == "" {
		req.Voice = s.defaults.DefaultVoice
	}
	if req.Rate == "" {
		req.Rate = s.defaults.DefaultRate
	}
	if req.Pitch == "" {
		req.Pitch = s.defaults.DefaultPitch
	}

	logger := slog.With("voice", req.Voice, "text_length", len(req.Text))
	logger.Info("synthesis started", "rate", req.Rate, "pitch", req.Pitch)

	if !s.credentialPresent {
		logger.Error("synthesis refused, no credential configured")
		s.observe(req.Voice, metrics.StatusNotConfigured, start)
		return nil, synth.ErrNotConfigured
	}

	result, err := s.synthesizer.Synthesize(ctx, synth.Request{
		Text:  req.Text,
		Voice: req.Voice,
		Rate:  req.Rate,
		Pitch: req.Pitch,
	})
	if err != nil {
		logger.Error("synthesis failed", "error", err)
		s.observe(req.Voice, errorStatus(err), start)
		return nil, err
	}

	resp := &SynthesizeResponse{
		Success:    true,
		Format:     result.Format,
		SampleRate: result.SampleRate,
		Voice:      req.Voice,
	}
	resp.setAudioBytes(result.Audio)

	s.observe(req.Voice, metrics.StatusSuccess, start)
	if s.metrics != nil {
		s.metrics.ObserveAudioSize(len(result.Audio))
	}
	logger.Info("synthesis complete", "audio_bytes", len(result.Audio), "duration", time.Since(start))

	return resp, nil
}

// Voices returns the static voice catalog. Always the same list.
func (s *Service) Voices() VoicesResponse {
	return VoicesResponse{Voices: voice.Catalog()}
}

// Health reports credential presence. It performs no network I/O and does
// not verify the credential against the provider.
func (s *Service) Health() HealthStatus {
	return HealthStatus{
		Status:          "healthy",
		AzureConfigured: s.credentialPresent,
	}
}

func (s *Service) observe(voiceName, status string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveRequest(voiceName, status, time.Since(start))
	}
}

// errorStatus maps a synthesis error onto a metrics status label.
func errorStatus(err error) string {
	var unavailable *synth.UnavailableError
	var rejected *synth.RejectedError
	switch {
	case errors.Is(err, synth.ErrNotConfigured):
		return metrics.StatusNotConfigured
	case errors.As(err, &unavailable):
		return metrics.StatusUnavailable
	case errors.As(err, &rejected):
		return metrics.StatusRejected
	default:
		return metrics.StatusInternalError
	}
}
