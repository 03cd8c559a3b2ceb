package llm

import (
	"context"
	"encoding/json"
)

// Client defines the interface for classification providers.
type Client interface {
	// Classify buckets the transcript's fragments into urgent and later
	// items. The returned bytes are the model's JSON output verbatim,
	// validated only for syntax, never for shape.
	Classify(ctx context.Context, transcript string) (json.RawMessage, error)
}

// Buckets is the expected shape of a classification result. Either key
// may be absent; absent keys decode to nil slices.
type Buckets struct {
	Urgent []string `json:"urgent"`
	Later  []string `json:"later"`
}

// Empty reports whether the response carried neither bucket key.
func (b Buckets) Empty() bool {
	return b.Urgent == nil && b.Later == nil
}

// Config holds configuration for a classification client.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// systemPrompt is the fixed instruction sent with every classification
// request. The bounded max_tokens setting keeps the output small.
const systemPrompt = `You are a task organizer. You will receive the transcript of a voice memo. ` +
	`Split it into individual actionable tasks and sort each task into one of two buckets: ` +
	`"urgent" for things that must happen soon, "later" for everything else. ` +
	`You MUST respond with ONLY a valid JSON object of the exact shape ` +
	`{"urgent": ["..."], "later": ["..."]} and no other shape. ` +
	`Do not include any explanatory text, markdown formatting, or commentary before or after the JSON. ` +
	`Start your response directly with { and end with }.`
