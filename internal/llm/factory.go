package llm

import (
	"fmt"
	"strings"

	"github.com/whisperlist/whisperlist/internal/common"
)

// NewClient creates a classification client based on the provided configuration.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return newOpenAIClient(cfg)
	case "anthropic":
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported classification provider %q", common.ErrInvalidConfig, cfg.Provider)
	}
}
