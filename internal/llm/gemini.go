package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"google.golang.org/genai"
)

// GeminiProvider talks to the Gemini API through the official SDK.
type GeminiProvider struct {
	client     *genai.Client
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewGeminiProvider(apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini requires an API key")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}

// Ping hits the model listing endpoint directly so a bad key fails fast
// without spending tokens.
func (g *GeminiProvider) Ping(ctx context.Context) error {
	endpoint := "https://generativelanguage.googleapis.com/v1beta/models?pageSize=1&key=" + url.QueryEscape(g.apiKey)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cannot connect to Gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == 400 || resp.StatusCode == 401 || resp.StatusCode == 403 {
		return fmt.Errorf("invalid API key")
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("gemini API error: status %d", resp.StatusCode)
	}

	return nil
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no response from Gemini")
	}

	return text, nil
}
