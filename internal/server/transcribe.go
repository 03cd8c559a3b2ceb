package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/whisperlist/whisperlist/internal/common"
)

// maxUploadBytes bounds how much of a multipart upload is held in memory
// before spilling to disk.
const maxUploadBytes = 32 << 20

// Fixed error bodies of the transcribe contract.
const (
	msgNoAudioFile     = "No audio file provided"
	msgNoAIResponse    = "No response from AI"
	msgParseAIResponse = "Failed to parse AI response"
	msgTranscribeFail  = "Failed to transcribe audio"
)

// handleTranscribe accepts a multipart upload in the audio field, runs it
// through the pipeline, and returns the classification JSON verbatim.
func (s *Server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, msgNoAudioFile)
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		writeError(w, http.StatusBadRequest, msgNoAudioFile)
		return
	}
	defer func() { _ = file.Close() }()

	audio, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("failed to read upload", "error", err)
		writeError(w, http.StatusInternalServerError, msgTranscribeFail)
		return
	}

	result, err := s.pipeline.Run(r.Context(), audio, header.Filename)
	if err != nil {
		s.logger.Error("transcription pipeline failed",
			"filename", header.Filename,
			"bytes", len(audio),
			"error", err)

		switch {
		case errors.Is(err, common.ErrEmptyCompletion):
			writeError(w, http.StatusInternalServerError, msgNoAIResponse)
		case errors.Is(err, common.ErrMalformedCompletion):
			writeError(w, http.StatusInternalServerError, msgParseAIResponse)
		default:
			writeError(w, http.StatusInternalServerError, msgTranscribeFail)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(result)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
