package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultTimeout bounds the advisor call so a hung model degrades to the
// canned fallback instead of blocking the request.
const DefaultTimeout = 10 * time.Second

// OllamaAdvisor talks to a locally hosted model over the Ollama generate
// API.
type OllamaAdvisor struct {
	url    string
	model  string
	client *http.Client
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

func NewOllamaAdvisor(url, model string, timeout time.Duration) *OllamaAdvisor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OllamaAdvisor{
		url:   strings.TrimRight(url, "/"),
		model: model,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Ask sends the prompt to the model endpoint. Any failure (transport, timeout,
// error status, malformed body) degrades to a canned answer; the shopper never
// sees an advisor error.
func (a *OllamaAdvisor) Ask(ctx context.Context, prompt string) Response {
	body, err := json.Marshal(generateRequest{
		Model:  a.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		log.Warn().Err(err).Msg("advisor request marshal failed, serving canned answer")
		return fallback()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url+"/api/generate", bytes.NewReader(body))
	if err != nil {
		log.Warn().Err(err).Msg("advisor request build failed, serving canned answer")
		return fallback()
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("advisor call failed, serving canned answer")
		return fallback()
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().Int("status", resp.StatusCode).Msg("advisor returned error status, serving canned answer")
		return fallback()
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Warn().Err(err).Msg("advisor response undecodable, serving canned answer")
		return fallback()
	}
	if out.Response == "" {
		log.Warn().Msg("advisor response empty, serving canned answer")
		return fallback()
	}

	return Response{Text: out.Response, Source: SourceLive}
}

func (a *OllamaAdvisor) Model() string {
	return a.model
}

// Compile-time interface check
var _ Advisor = (*OllamaAdvisor)(nil)
