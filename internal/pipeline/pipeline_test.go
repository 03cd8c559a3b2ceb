package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whisperlist/whisperlist/internal/common"
)

type mockTranscriber struct {
	err      error
	text     string
	lastPath string
	gotAudio []byte
}

func (m *mockTranscriber) Transcribe(_ context.Context, path string) (string, error) {
	m.lastPath = path
	m.gotAudio, _ = os.ReadFile(path)
	return m.text, m.err
}

type mockClassifier struct {
	err            error
	result         json.RawMessage
	lastTranscript string
}

func (m *mockClassifier) Classify(_ context.Context, transcript string) (json.RawMessage, error) {
	m.lastTranscript = transcript
	return m.result, m.err
}

func TestRunHappyPath(t *testing.T) {
	transcriber := &mockTranscriber{text: "call the bank and buy milk"}
	classifier := &mockClassifier{result: json.RawMessage(`{"urgent":["call bank"],"later":["buy milk"]}`)}

	p := New(transcriber, classifier, nil)
	got, err := p.Run(context.Background(), []byte("audio bytes"), "memo.webm")
	require.NoError(t, err)
	assert.JSONEq(t, `{"urgent":["call bank"],"later":["buy milk"]}`, string(got))

	// the transcript flows into the classifier untouched
	assert.Equal(t, "call the bank and buy milk", classifier.lastTranscript)

	// the upload reached the transcriber through a temp file with the
	// original extension
	assert.Equal(t, []byte("audio bytes"), transcriber.gotAudio)
	assert.Equal(t, ".webm", filepath.Ext(transcriber.lastPath))
}

func TestRunRemovesTempFileOnEveryPath(t *testing.T) {
	tests := []struct {
		name        string
		transcriber *mockTranscriber
		classifier  *mockClassifier
		wantErr     bool
	}{
		{
			name:        "success",
			transcriber: &mockTranscriber{text: "hi"},
			classifier:  &mockClassifier{result: json.RawMessage(`{}`)},
		},
		{
			name:        "transcription failure",
			transcriber: &mockTranscriber{err: errors.New("stt down")},
			classifier:  &mockClassifier{},
			wantErr:     true,
		},
		{
			name:        "classification failure",
			transcriber: &mockTranscriber{text: "hi"},
			classifier:  &mockClassifier{err: common.ErrMalformedCompletion},
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.transcriber, tt.classifier, nil)
			_, err := p.Run(context.Background(), []byte("audio"), "memo.wav")
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			require.NotEmpty(t, tt.transcriber.lastPath)
			_, statErr := os.Stat(tt.transcriber.lastPath)
			assert.True(t, os.IsNotExist(statErr), "temp file must be removed")
		})
	}
}

func TestRunPropagatesSentinels(t *testing.T) {
	transcriber := &mockTranscriber{text: "hi"}

	p := New(transcriber, &mockClassifier{err: common.ErrEmptyCompletion}, nil)
	_, err := p.Run(context.Background(), []byte("audio"), "a.wav")
	require.ErrorIs(t, err, common.ErrEmptyCompletion)

	p = New(transcriber, &mockClassifier{err: common.ErrMalformedCompletion}, nil)
	_, err = p.Run(context.Background(), []byte("audio"), "a.wav")
	require.ErrorIs(t, err, common.ErrMalformedCompletion)
}
