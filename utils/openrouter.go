package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hackhub/config"
)

const (
	openRouterEndpoint     = "https://openrouter.ai/api/v1/chat/completions"
	openRouterDefaultModel = "x-ai/grok-2-vision-1212"
	siteName               = "Hackathon Nexus"
)

var openRouterClient = &http.Client{Timeout: 60 * time.Second}

type openRouterRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type openRouterResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// ChatWithOpenRouter sends a conversation to OpenRouter and returns the
// assistant's reply text.
func ChatWithOpenRouter(messages []ChatMessage) (string, error) {
	if config.AppConfig.OpenRouterKey == "" {
		return "", fmt.Errorf("OPENROUTER_API_KEY is not set")
	}

	payload, err := json.Marshal(openRouterRequest{
		Model:    openRouterDefaultModel,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, openRouterEndpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+config.AppConfig.OpenRouterKey)
	req.Header.Set("HTTP-Referer", config.AppConfig.SiteURL)
	req.Header.Set("X-Title", siteName)
	req.Header.Set("Content-Type", "application/json")

	resp, err := openRouterClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openrouter API error: %s", string(body))
	}

	var parsed openRouterResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to parse openrouter response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openrouter returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
