package advisor

import (
	"context"
	"math/rand"
)

// fallbackResponses are served whenever the model endpoint cannot answer.
var fallbackResponses = []string{
	"Based on your requirements, I'd recommend the Wireless Earbuds. They have excellent sound quality, long battery life, and are perfect for your needs.",
	"The Minimalist Wall Clock would be a perfect addition to your home decor. Its clean design and reliable mechanism make it a great value purchase.",
	"I'd suggest the Memory Foam Pillow. It provides excellent support for a good night's sleep and has consistently high ratings from customers.",
	"For your budget, the Smart LED Bulb offers the best value. It's energy-efficient, long-lasting, and can be controlled from your smartphone.",
	"The Stainless Steel Water Bottle is my recommendation. It's durable, keeps drinks at the right temperature for hours, and is environmentally friendly.",
}

// FallbackResponses exposes the canned answers so tests can assert the
// fallback path stays within the known set.
func FallbackResponses() []string {
	out := make([]string, len(fallbackResponses))
	copy(out, fallbackResponses)
	return out
}

func fallback() Response {
	return Response{
		Text:   fallbackResponses[rand.Intn(len(fallbackResponses))],
		Source: SourceFallback,
	}
}

// CannedAdvisor always answers from the fallback set. It backs the "canned"
// provider used in tests and offline demos.
type CannedAdvisor struct {
	model string
}

func NewCannedAdvisor(model string) *CannedAdvisor {
	return &CannedAdvisor{model: model}
}

func (a *CannedAdvisor) Ask(ctx context.Context, prompt string) Response {
	return fallback()
}

func (a *CannedAdvisor) Model() string {
	return a.model + "-canned"
}

// Compile-time interface check
var _ Advisor = (*CannedAdvisor)(nil)
