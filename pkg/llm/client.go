package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type Analysis struct {
	Summary   string
	Sentiment string
}

var (
	// ErrBackend wraps network and provider-side failures.
	ErrBackend = errors.New("summarization backend error")
	// ErrMalformedResponse means the model returned text that is not JSON
	// even after fence stripping.
	ErrMalformedResponse = errors.New("malformed AI response")
	// ErrInvalidResponse means the JSON parsed but a required field is
	// missing or empty.
	ErrInvalidResponse = errors.New("invalid AI response")
)

type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (*Analysis, error)
}

// parseAnalysis validates the raw model output shared by every provider.
func parseAnalysis(content string) (*Analysis, error) {
	content = cleanJSONResponse(content)

	var parsed struct {
		Summary   string `json:"summary"`
		Sentiment string `json:"sentiment"`
	}

	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if parsed.Summary == "" || parsed.Sentiment == "" {
		return nil, ErrInvalidResponse
	}

	return &Analysis{
		Summary:   parsed.Summary,
		Sentiment: parsed.Sentiment,
	}, nil
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
