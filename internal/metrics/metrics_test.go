package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest("lt-LT-LeonasNeural", StatusSuccess, 250*time.Millisecond)
	m.ObserveRequest("lt-LT-LeonasNeural", StatusSuccess, 100*time.Millisecond)
	m.ObserveRequest("lt-LT-OnaNeural", StatusRejected, 50*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("lt-LT-LeonasNeural", StatusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("lt-LT-OnaNeural", StatusRejected)))
}

func TestObserveAudioSize(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveAudioSize(4096)

	assert.Equal(t, 1, testutil.CollectAndCount(m.audioBytes))
}
