// Package azure implements the synth.Synthesizer against the Azure Cognitive
// Services speech REST endpoint.
//
// The client speaks the plain REST surface rather than a vendor SDK (none
// exists for Go): one POST of an SSML document to the regional endpoint,
// authorized with a subscription key header, returning the encoded audio
// bytes directly in the response body.
//
// Request shape:
//
//	POST https://{region}.tts.speech.microsoft.com/cognitiveservices/v1
//	Ocp-Apim-Subscription-Key: {key}
//	Content-Type: application/ssml+xml
//	X-Microsoft-OutputFormat: audio-16khz-32kbitrate-mono-mp3
package azure

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/audriusb/balsas/internal/config"
	"github.com/audriusb/balsas/internal/synth"
)

const (
	// outputFormat requests 16 kHz mono MP3 at 32 kbit/s.
	outputFormat = "audio-16khz-32kbitrate-mono-mp3"

	// userAgent identifies balsas to the speech endpoint.
	userAgent = "balsas-tts"

	defaultTimeout = 30 * time.Second
)

// Synthesizer implements synth.Synthesizer over the Azure speech REST API.
type Synthesizer struct {
	key      string
	endpoint string
	client   *http.Client
}

// New creates a new Azure synthesizer from config.
func New(cfg config.AzureConfig) *Synthesizer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Synthesizer{
		key:      cfg.Key,
		endpoint: fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", cfg.Region),
		client:   &http.Client{Timeout: timeout},
	}
}

// Synthesize sends SSML to the speech endpoint and returns the MP3 audio.
func (s *Synthesizer) Synthesize(ctx context.Context, req synth.Request) (*synth.Result, error) {
	if s.key == "" {
		return nil, synth.ErrNotConfigured
	}
	if req.Text == "" {
		return nil, fmt.Errorf("empty text for synthesis")
	}

	ssml := buildSSML(req)

	slog.Debug("azure synthesize",
		"text_length", len(req.Text),
		"voice", req.Voice,
		"endpoint", s.endpoint)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(ssml))
	if err != nil {
		return nil, fmt.Errorf("building synthesis request: %w", err)
	}
	httpReq.Header.Set("Ocp-Apim-Subscription-Key", s.key)
	httpReq.Header.Set("Content-Type", "application/ssml+xml")
	httpReq.Header.Set("X-Microsoft-OutputFormat", outputFormat)
	httpReq.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, &synth.UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &synth.RejectedError{
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(string(body)),
		}
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &synth.UnavailableError{Err: fmt.Errorf("reading audio: %w", err)}
	}

	slog.Debug("azure synthesize complete", "audio_bytes", len(audio))

	return &synth.Result{
		Audio:      audio,
		Format:     "mp3",
		SampleRate: 16000,
	}, nil
}

// Close is a no-op — requests share a plain HTTP client.
func (s *Synthesizer) Close() error { return nil }

// buildSSML wraps the text in the provider's SSML envelope. The text is
// XML-escaped; voice, rate, and pitch are caller-supplied directives and
// pass through verbatim.
func buildSSML(req synth.Request) string {
	var text bytes.Buffer
	_ = xml.EscapeText(&text, []byte(req.Text))

	var b strings.Builder
	b.WriteString("<speak version='1.0' xml:lang='lt-LT'>")
	fmt.Fprintf(&b, "<voice name='%s'>", req.Voice)
	fmt.Fprintf(&b, "<prosody rate='%s' pitch='%s'>", req.Rate, req.Pitch)
	b.Write(text.Bytes())
	b.WriteString("</prosody></voice></speak>")
	return b.String()
}
