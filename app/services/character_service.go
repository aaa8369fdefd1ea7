package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/mangamart/config"
	"github.com/shashiranjanraj/mangamart/pkg/http"
	"github.com/shashiranjanraj/mangamart/pkg/metrics"
)

const characterSystemRole = "You are an anime and manga expert."

// characterPrompt embeds the caller-supplied title verbatim. The
// completion API handles its own escaping; none is applied here.
const characterPrompt = "List the top 5 most popular characters from the manga '%s' with a short description. " +
	"Start directly from the first character and end on the fifth character, without extra text."

// CharacterService asks a chat-completion API to describe the most
// popular characters of a manga. It is a passthrough: one request, one
// response, the raw text of the first choice returned unmodified.
type CharacterService struct {
	baseURL string
	apiKey  string
	model   string
}

func NewCharacterService() *CharacterService {
	return &CharacterService{
		baseURL: config.OpenAIBaseURL(),
		apiKey:  config.OpenAIKey(),
		model:   config.OpenAIModel(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Lookup returns the completion text for the given manga title. Any
// API failure surfaces immediately; there are no retries at this layer.
func (s *CharacterService) Lookup(ctx context.Context, title string) (string, error) {
	body := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: characterSystemRole},
			{Role: "user", Content: fmt.Sprintf(characterPrompt, title)},
		},
	}

	resp, err := http.Post(s.baseURL+"/chat/completions").
		Bearer(s.apiKey).
		Body(body).
		WithContext(ctx).
		Send()
	if err != nil {
		metrics.ExternalRequests.WithLabelValues("openai", "error").Inc()
		return "", externalAPIErr(err.Error(), err)
	}

	if err := resp.Throw(); err != nil {
		metrics.ExternalRequests.WithLabelValues("openai", "error").Inc()
		return "", externalAPIErr(err.Error(), err)
	}

	var out chatResponse
	if err := resp.JSON(&out); err != nil {
		metrics.ExternalRequests.WithLabelValues("openai", "error").Inc()
		return "", externalAPIErr(err.Error(), err)
	}

	if len(out.Choices) == 0 {
		metrics.ExternalRequests.WithLabelValues("openai", "error").Inc()
		return "", externalAPIErr("completion API returned no choices", nil)
	}

	metrics.ExternalRequests.WithLabelValues("openai", "ok").Inc()
	return out.Choices[0].Message.Content, nil
}
