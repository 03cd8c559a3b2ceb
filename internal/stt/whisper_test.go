package stt

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whisperlist/whisperlist/internal/common"
)

func writeTestAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memo.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF fake audio"), 0o600))
	return path
}

func newTestWhisperClient(t *testing.T, handler http.HandlerFunc) *whisperClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := newWhisperClient(Config{APIKey: "test-key"})
	require.NoError(t, err)

	c, ok := client.(*whisperClient)
	require.True(t, ok)
	c.baseURL = srv.URL
	return c
}

func TestNewWhisperClientRequiresKey(t *testing.T) {
	_, err := newWhisperClient(Config{})
	require.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestWhisperTranscribe(t *testing.T) {
	path := writeTestAudio(t)

	c := newTestWhisperClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-1", r.FormValue("model"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "memo.wav", header.Filename)

		fmt.Fprint(w, `{"text":"call the bank and buy milk"}`)
	})

	text, err := c.Transcribe(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "call the bank and buy milk", text)
}

func TestWhisperTranscribeUpstreamError(t *testing.T) {
	path := writeTestAudio(t)

	c := newTestWhisperClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"invalid audio"}}`, http.StatusBadRequest)
	})

	_, err := c.Transcribe(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestWhisperTranscribeMissingFile(t *testing.T) {
	c := newTestWhisperClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"text":""}`)
	})

	_, err := c.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.wav"))
	require.Error(t, err)
}

func TestFactory(t *testing.T) {
	_, err := NewClient(Config{Provider: "openai", APIKey: "k"})
	require.NoError(t, err)

	_, err = NewClient(Config{Provider: "whisper", APIKey: "k"})
	require.NoError(t, err)

	_, err = NewClient(Config{Provider: "deepgram"})
	require.Error(t, err)
}
