package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audriusb/balsas/internal/config"
	"github.com/audriusb/balsas/internal/metrics"
	"github.com/audriusb/balsas/internal/synth"
)

// fakeSynthesizer records calls and returns canned results.
type fakeSynthesizer struct {
	calls   int
	lastReq synth.Request
	result  *synth.Result
	err     error
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, req synth.Request) (*synth.Result, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeSynthesizer) Close() error { return nil }

func testConfig(key string) *config.Config {
	return &config.Config{
		Provider: config.ProviderConfig{
			Backend: "azure",
			Azure:   config.AzureConfig{Key: key, Region: "westeurope"},
		},
		Synthesis: config.SynthesisConfig{
			DefaultVoice: "lt-LT-LeonasNeural",
			DefaultRate:  "0%",
			DefaultPitch: "0%",
		},
	}
}

func newTestService(fake *fakeSynthesizer, key string) *Service {
	return New(fake, testConfig(key), metrics.New(prometheus.NewRegistry()))
}

func TestSynthesizeEnvelope(t *testing.T) {
	fake := &fakeSynthesizer{result: &synth.Result{
		Audio:      []byte{0x00, 0x01},
		Format:     "mp3",
		SampleRate: 16000,
	}}
	svc := newTestService(fake, "secret")

	resp, err := svc.Synthesize(context.Background(), SynthesizeRequest{
		Text:  "Labas",
		Voice: "lt-LT-OnaNeural",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "AAE=", resp.AudioBase64)
	assert.Equal(t, "mp3", resp.Format)
	assert.Equal(t, 16000, resp.SampleRate)
	assert.Equal(t, "lt-LT-OnaNeural", resp.Voice)
}

func TestSynthesizeAppliesDefaults(t *testing.T) {
	fake := &fakeSynthesizer{result: &synth.Result{Audio: []byte("a"), Format: "mp3", SampleRate: 16000}}
	svc := newTestService(fake, "secret")

	_, err := svc.Synthesize(context.Background(), SynthesizeRequest{Text: "Labas"})
	require.NoError(t, err)

	assert.Equal(t, "lt-LT-LeonasNeural", fake.lastReq.Voice)
	assert.Equal(t, "0%", fake.lastReq.Rate)
	assert.Equal(t, "0%", fake.lastReq.Pitch)
	assert.Equal(t, "Labas", fake.lastReq.Text)
}

func TestSynthesizeNoCredential(t *testing.T) {
	fake := &fakeSynthesizer{result: &synth.Result{Audio: []byte("a")}}
	svc := newTestService(fake, "")

	_, err := svc.Synthesize(context.Background(), SynthesizeRequest{Text: "Labas"})

	assert.True(t, errors.Is(err, synth.ErrNotConfigured))
	assert.Contains(t, err.Error(), "not configured")
	assert.Zero(t, fake.calls, "backend must not be called without a credential")
}

func TestSynthesizePropagatesBackendError(t *testing.T) {
	rejected := &synth.RejectedError{Status: 401, Message: "bad key"}
	fake := &fakeSynthesizer{err: rejected}
	svc := newTestService(fake, "secret")

	_, err := svc.Synthesize(context.Background(), SynthesizeRequest{Text: "Labas"})

	var got *synth.RejectedError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 401, got.Status)
}

func TestVoicesIdempotent(t *testing.T) {
	svc := newTestService(&fakeSynthesizer{}, "secret")

	first := svc.Voices()
	second := svc.Voices()

	require.Len(t, first.Voices, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, "lt-LT-LeonasNeural", first.Voices[0].Name)
	assert.Equal(t, "lt-LT-OnaNeural", first.Voices[1].Name)
}

func TestHealthReflectsCredential(t *testing.T) {
	withKey := newTestService(&fakeSynthesizer{}, "secret")
	assert.Equal(t, HealthStatus{Status: "healthy", AzureConfigured: true}, withKey.Health())

	withoutKey := newTestService(&fakeSynthesizer{}, "")
	assert.Equal(t, HealthStatus{Status: "healthy", AzureConfigured: false}, withoutKey.Health())
}

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, metrics.StatusNotConfigured, errorStatus(synth.ErrNotConfigured))
	assert.Equal(t, metrics.StatusUnavailable, errorStatus(&synth.UnavailableError{Err: errors.New("refused")}))
	assert.Equal(t, metrics.StatusRejected, errorStatus(&synth.RejectedError{Status: 400}))
	assert.Equal(t, metrics.StatusInternalError, errorStatus(errors.New("boom")))
}
