// Package synth defines the interface for text-to-speech synthesis backends.
//
// Balsas forwards text to a cloud speech provider and returns the raw audio
// bytes. The provider transport (REST today, an SDK later if one appears)
// lives behind the Synthesizer interface so the HTTP layer never sees it.
package synth

import (
	"context"
	"errors"
	"fmt"
)

// Request describes a single synthesis call.
type Request struct {
	// Text is the plain text to synthesize.
	Text string

	// Voice is the provider voice name (e.g., "lt-LT-LeonasNeural").
	Voice string

	// Rate is the prosody rate directive (e.g., "0%", "-20%").
	// Passed through to the provider unchecked.
	Rate string

	// Pitch is the prosody pitch directive (e.g., "0%", "+10%").
	// Passed through to the provider unchecked.
	Pitch string
}

// Result holds the output of a synthesis call.
type Result struct {
	// Audio is the synthesized audio exactly as returned by the provider.
	Audio []byte

	// Format is the audio container format (e.g., "mp3").
	Format string

	// SampleRate is the audio sample rate in Hz.
	SampleRate int
}

// Synthesizer converts text to audio via a speech provider.
type Synthesizer interface {
	// Synthesize performs one blocking synthesis call. The context deadline
	// bounds the outbound request; there are no retries.
	Synthesize(ctx context.Context, req Request) (*Result, error)

	// Close releases any resources held by the synthesizer.
	Close() error
}

// ErrNotConfigured is returned when no provider credential is available.
// The caller must not have attempted an outbound call when it sees this.
var ErrNotConfigured = errors.New("speech credential not configured")

// UnavailableError indicates the provider could not be reached at all
// (DNS, connect, timeout). The provider never saw the request.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("speech provider unreachable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// RejectedError indicates the provider answered with a non-success status.
// Status and Message carry the provider's own verdict for propagation.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("speech provider rejected request: status %d: %s", e.Status, e.Message)
}
