package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whisperlist/whisperlist/internal/common"
)

type mockPipeline struct {
	err      error
	result   json.RawMessage
	gotName  string
	gotAudio []byte
}

func (m *mockPipeline) Run(_ context.Context, audio []byte, name string) (json.RawMessage, error) {
	m.gotAudio = audio
	m.gotName = name
	return m.result, m.err
}

func multipartAudio(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func postTranscribe(t *testing.T, p Pipeline, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	srv := New(p, "127.0.0.1", 0, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestTranscribeSuccess(t *testing.T) {
	p := &mockPipeline{result: json.RawMessage(`{"urgent":["call bank"],"later":["buy milk"]}`)}
	body, contentType := multipartAudio(t, "audio", "memo.webm", []byte("audio bytes"))

	rec := postTranscribe(t, p, body, contentType)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"urgent":["call bank"],"later":["buy milk"]}`, rec.Body.String())

	assert.Equal(t, []byte("audio bytes"), p.gotAudio)
	assert.Equal(t, "memo.webm", p.gotName)
}

func TestTranscribeReturnsResultVerbatim(t *testing.T) {
	// No shape validation: missing or extra keys pass straight through.
	p := &mockPipeline{result: json.RawMessage(`{"later":["x"],"note":"partial"}`)}
	body, contentType := multipartAudio(t, "audio", "m.wav", []byte("a"))

	rec := postTranscribe(t, p, body, contentType)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"later":["x"],"note":"partial"}`, rec.Body.String())
}

func TestTranscribeMissingAudioField(t *testing.T) {
	p := &mockPipeline{}
	body, contentType := multipartAudio(t, "file", "memo.webm", []byte("audio"))

	rec := postTranscribe(t, p, body, contentType)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"No audio file provided"}`, rec.Body.String())
	assert.Nil(t, p.gotAudio, "pipeline must not run")
}

func TestTranscribeNotMultipart(t *testing.T) {
	rec := postTranscribe(t, &mockPipeline{}, bytes.NewBufferString("{}"), "application/json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"No audio file provided"}`, rec.Body.String())
}

func TestTranscribePipelineErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantBody string
	}{
		{
			name:     "empty completion",
			err:      common.ErrEmptyCompletion,
			wantBody: `{"error":"No response from AI"}`,
		},
		{
			name:     "malformed completion",
			err:      common.ErrMalformedCompletion,
			wantBody: `{"error":"Failed to parse AI response"}`,
		},
		{
			name:     "wrapped malformed completion",
			err:      errors.Join(errors.New("classification failed"), common.ErrMalformedCompletion),
			wantBody: `{"error":"Failed to parse AI response"}`,
		},
		{
			name:     "anything else",
			err:      errors.New("provider timeout"),
			wantBody: `{"error":"Failed to transcribe audio"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartAudio(t, "audio", "m.wav", []byte("a"))
			rec := postTranscribe(t, &mockPipeline{err: tt.err}, body, contentType)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHealth(t *testing.T) {
	srv := New(&mockPipeline{}, "127.0.0.1", 0, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
