package advisor

import (
	"context"
	"fmt"

	"github.com/qoozee/qoozee/internal/config"
)

// ResponseSource tells whether the text came from the live model or the
// canned fallback. Both render identically to the shopper.
type ResponseSource string

const (
	SourceLive     ResponseSource = "live"
	SourceFallback ResponseSource = "fallback"
)

// Response is an advisor answer. A fallback answer is a deliberate
// availability mechanism, never an error the shopper sees.
type Response struct {
	Text   string         `json:"text"`
	Source ResponseSource `json:"source"`
}

// Advisor answers free-form shopping prompts.
type Advisor interface {
	Ask(ctx context.Context, prompt string) Response
	Model() string
}

// New creates an advisor based on configuration.
func New(cfg *config.AdvisorConfig) (Advisor, error) {
	switch cfg.Provider {
	case "ollama", "":
		return NewOllamaAdvisor(cfg.URL, cfg.Model, cfg.Timeout), nil
	case "canned":
		return NewCannedAdvisor(cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported advisor provider: %s", cfg.Provider)
	}
}
