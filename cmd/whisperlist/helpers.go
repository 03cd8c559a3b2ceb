package main

import (
	"log/slog"

	"github.com/spf13/viper"

	"github.com/whisperlist/whisperlist/internal/common"
	"github.com/whisperlist/whisperlist/internal/llm"
	"github.com/whisperlist/whisperlist/internal/pipeline"
	"github.com/whisperlist/whisperlist/internal/stt"
)

// buildPipeline wires the configured providers into a pipeline. Provider
// credentials come from config or WHISPERLIST_* env vars; there is no
// fallback when they are absent.
func buildPipeline() (*pipeline.Pipeline, error) {
	transcriber, err := stt.NewClient(stt.Config{
		Provider: viper.GetString("stt.provider"),
		APIKey:   viper.GetString("stt.api_key"),
		Model:    viper.GetString("stt.model"),
		Language: viper.GetString("stt.language"),
	})
	if err != nil {
		return nil, common.NewUserError("Transcription provider is not configured; set stt.api_key or WHISPERLIST_STT_API_KEY", err)
	}

	classifier, err := llm.NewClient(llm.Config{
		Provider:    viper.GetString("llm.provider"),
		APIKey:      viper.GetString("llm.api_key"),
		Model:       viper.GetString("llm.model"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
	})
	if err != nil {
		return nil, common.NewUserError("Classification provider is not configured; set llm.api_key or WHISPERLIST_LLM_API_KEY", err)
	}

	return pipeline.New(transcriber, classifier, slog.Default()), nil
}
