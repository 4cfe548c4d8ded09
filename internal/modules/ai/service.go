package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"nexus/internal/modules/composer"
)

// generator is the slice of the genai client the service uses.
// *genai.Models satisfies it; tests substitute a deterministic fake.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Service struct {
	models     generator
	flashModel string
	proModel   string
}

func NewService(client *genai.Client, flashModel, proModel string) *Service {
	return &Service{
		models:     client.Models,
		flashModel: flashModel,
		proModel:   proModel,
	}
}

// ModerateContent classifies a post body against the community safety
// guidelines. Transport and parse failures return an error; the composer
// gate owns the fail-open policy.
func (s *Service) ModerateContent(ctx context.Context, content string) (composer.Verdict, error) {
	// %q keeps embedded quotes and control characters intact in transit.
	prompt := fmt.Sprintf(`Analyze the following social media post for safety guidelines (no hate speech, spam, or harmful content).
Return a JSON object with:
- "safe": boolean
- "reason": string (if unsafe)
- "sentiment": string (positive, negative, neutral)

Content: %q`, content)

	resp, err := s.models.GenerateContent(ctx, s.flashModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"safe":      {Type: genai.TypeBoolean},
				"reason":    {Type: genai.TypeString},
				"sentiment": {Type: genai.TypeString},
			},
			Required: []string{"safe", "sentiment"},
		},
	})
	if err != nil {
		return composer.Verdict{}, fmt.Errorf("moderation call: %w", err)
	}

	var out struct {
		Safe      bool   `json:"safe"`
		Reason    string `json:"reason"`
		Sentiment string `json:"sentiment"`
	}
	if err := json.Unmarshal([]byte(resp.Text()), &out); err != nil {
		return composer.Verdict{}, fmt.Errorf("moderation response: %w", err)
	}
	return composer.Verdict{Safe: out.Safe, Reason: out.Reason, Sentiment: out.Sentiment}, nil
}

// RecommendCommunities suggests niche community categories from a user's
// bio and interests. Any failure falls back to a generic set.
func (s *Service) RecommendCommunities(ctx context.Context, bio string, interests []string) []string {
	prompt := fmt.Sprintf(
		"Based on a user's interests: [%s] and bio: %q, suggest 5 relevant niche community categories for a social media app. Return as a plain JSON array of strings.",
		strings.Join(interests, ", "), bio)

	resp, err := s.models.GenerateContent(ctx, s.flashModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	})
	if err != nil {
		log.Printf("community recommendations failed: %v", err)
		return defaultRecommendations()
	}

	var out []string
	if err := json.Unmarshal([]byte(resp.Text()), &out); err != nil || len(out) == 0 {
		return defaultRecommendations()
	}
	return out
}

func defaultRecommendations() []string {
	return []string{"General", "Tech", "Life"}
}

// ExplainAnalytics turns a raw metrics summary into an operator-friendly
// explanation using the larger model.
func (s *Service) ExplainAnalytics(ctx context.Context, dataSummary string) (string, error) {
	resp, err := s.models.GenerateContent(ctx, s.proModel,
		genai.Text("You are an expert community manager. Explain these growth metrics in a helpful way: "+dataSummary),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: "Keep it professional, data-driven, and actionable."}},
			},
		})
	if err != nil {
		return "", fmt.Errorf("analytics insight: %w", err)
	}
	text := resp.Text()
	if text == "" {
		text = "Unable to generate insights."
	}
	return text, nil
}
