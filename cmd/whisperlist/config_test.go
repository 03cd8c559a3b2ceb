package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTestConfig points initConfig at an empty config file so a real
// ~/.config/whisperlist/config.yaml cannot leak into the test.
func useTestConfig(t *testing.T) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o600))
	cfgFile = path
	t.Cleanup(func() { cfgFile = "" })
}

func TestEnvOverridesDottedConfigKeys(t *testing.T) {
	useTestConfig(t)
	t.Setenv("WHISPERLIST_STT_API_KEY", "sk-stt-from-env")
	t.Setenv("WHISPERLIST_LLM_API_KEY", "sk-llm-from-env")
	t.Setenv("WHISPERLIST_SERVER_PORT", "9090")

	require.NoError(t, initConfig(nil, nil))

	assert.Equal(t, "sk-stt-from-env", viper.GetString("stt.api_key"))
	assert.Equal(t, "sk-llm-from-env", viper.GetString("llm.api_key"))
	assert.Equal(t, 9090, viper.GetInt("server.port"))
}

func TestEnvUnsetFallsBackToDefaults(t *testing.T) {
	useTestConfig(t)

	require.NoError(t, initConfig(nil, nil))

	assert.Equal(t, "openai", viper.GetString("stt.provider"))
	assert.Equal(t, "whisper-1", viper.GetString("stt.model"))
	assert.Equal(t, "http://127.0.0.1:8080", viper.GetString("client.server_url"))
}
