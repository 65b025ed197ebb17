package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/notulen-team/e-notulen/pkg/config"
)

const (
	summarizeSystemPrompt = "Anda adalah asisten administrasi pemerintahan profesional. Gunakan bahasa Indonesia yang formal (EYD) dan ringkas."

	summarizePromptTemplate = "Ringkaskan notulen rapat berikut ini menjadi poin-poin penting yang padat dan profesional untuk standar pemerintahan Indonesia: \n\n%s"

	extractPromptTemplate = "Ekstrak daftar tindakan (Action Items) dari notulen berikut ini. Sertakan nama penanggung jawab jika ada. " +
		"Jawab HANYA dengan array JSON berbentuk [{\"task\": string, \"assignee\": string, \"deadline\": string}]; " +
		"task wajib diisi, assignee dan deadline boleh kosong.\n\n%s"
)

// GroqClient is a minimal client for Groq API calls used for LLM analysis
type GroqClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewGroqClient creates a Groq client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewGroqClient(cfg *config.GroqConfig) *GroqClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("GROQ_API_URL")
		if base == "" {
			base = "https://api.groq.com"
		}
	}

	model := "llama-3.1-70b-versatile"
	if cfg != nil && cfg.Model != "" {
		model = cfg.Model
	}

	return &GroqClient{
		apiKey:  apiKey,
		baseURL: base,
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string      `json:"model,omitempty"`
	Messages    interface{} `json:"messages,omitempty"`
	Temperature float64     `json:"temperature,omitempty"`
	MaxTokens   int         `json:"max_tokens,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateSummary condenses raw meeting notes into formal Bahasa Indonesia
// bullet points.
func (g *GroqClient) GenerateSummary(ctx context.Context, notes string) (string, error) {
	messages := []map[string]string{
		{"role": "system", "content": summarizeSystemPrompt},
		{"role": "user", "content": fmt.Sprintf(summarizePromptTemplate, notes)},
	}
	return g.complete(ctx, messages)
}

// ExtractActionItems asks the model for a JSON array of action items and
// returns the raw assistant content; the caller parses it.
func (g *GroqClient) ExtractActionItems(ctx context.Context, notes string) (string, error) {
	messages := []map[string]string{
		{"role": "user", "content": fmt.Sprintf(extractPromptTemplate, notes)},
	}
	return g.complete(ctx, messages)
}

// complete performs the chat-completion call with a bounded retry on
// transport errors and 5xx responses.
func (g *GroqClient) complete(ctx context.Context, messages interface{}) (string, error) {
	reqBody := ChatRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: 0.3,
		MaxTokens:   8000,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := g.baseURL + "/openai/v1/chat/completions"

	var content string
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("groq returned status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("groq returned status %d", resp.StatusCode))
		}

		var cr ChatResponse
		if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
			return backoff.Permanent(err)
		}
		if len(cr.Choices) == 0 {
			return backoff.Permanent(fmt.Errorf("empty response from groq"))
		}
		content = cr.Choices[0].Message.Content
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}
	return content, nil
}
