package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AZURE_SPEECH_KEY", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 8081, cfg.Server.OpsPort)
	assert.Equal(t, "azure", cfg.Provider.Backend)
	assert.Equal(t, "westeurope", cfg.Provider.Azure.Region)
	assert.Equal(t, 30*time.Second, cfg.Provider.Azure.Timeout)
	assert.Equal(t, "lt-LT-LeonasNeural", cfg.Synthesis.DefaultVoice)
	assert.Equal(t, "0%", cfg.Synthesis.DefaultRate)
	assert.Equal(t, "0%", cfg.Synthesis.DefaultPitch)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadResolvesCredential(t *testing.T) {
	t.Setenv("AZURE_SPEECH_KEY", "super-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "super-secret", cfg.Provider.Azure.Key)
	assert.True(t, cfg.CredentialPresent())
}

func TestLoadMissingCredential(t *testing.T) {
	t.Setenv("AZURE_SPEECH_KEY", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Provider.Azure.Key)
	assert.False(t, cfg.CredentialPresent())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BALSAS_SERVER_PORT", "9090")
	t.Setenv("BALSAS_PROVIDER_AZURE_REGION", "northeurope")
	t.Setenv("BALSAS_LOGGING_FORMAT", "text")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "northeurope", cfg.Provider.Azure.Region)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestResolveEnvRef(t *testing.T) {
	t.Setenv("BALSAS_TEST_SECRET", "value")

	assert.Equal(t, "value", resolveEnvRef("${BALSAS_TEST_SECRET}"))
	assert.Equal(t, "literal", resolveEnvRef("literal"))
	assert.Empty(t, resolveEnvRef("${BALSAS_TEST_UNSET_VAR}"))
}
