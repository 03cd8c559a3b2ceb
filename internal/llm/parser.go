package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/whisperlist/whisperlist/internal/common"
)

// parseCompletion validates the model's text output as JSON and returns
// it verbatim. No shape validation happens here: a JSON object missing
// the urgent or later key is accepted and propagated as-is.
func parseCompletion(content string) (json.RawMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, common.ErrEmptyCompletion
	}

	content = cleanMarkdownWrapper(content)

	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("%w: not valid JSON", common.ErrMalformedCompletion)
	}

	return json.RawMessage(content), nil
}

// cleanMarkdownWrapper strips a ```json ... ``` fence that some models
// wrap around their output despite the instruction not to.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		if idx := strings.Index(content, "\n"); idx != -1 {
			content = content[idx+1:]
		} else {
			content = strings.TrimPrefix(content, "```json")
			content = strings.TrimPrefix(content, "```")
		}
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}

	return strings.TrimSpace(content)
}
