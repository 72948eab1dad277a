// Package gemini adapts the Gemini content generation API to
// ports.CompetitionGenerator.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/competeconnect/competition-api/internal/core/domain"
)

const DefaultModel = "gemini-2.5-flash"

// Config holds the generation credential and model name.
type Config struct {
	APIKey string
	Model  string
}

// Generator requests competition listings as structured JSON.
type Generator struct {
	models *genai.Models
	model  string
	config *genai.GenerateContentConfig
}

// New builds a Generator. An empty API key yields domain.ErrMissingCredential
// so callers can run with search disabled.
func New(ctx context.Context, cfg Config) (*Generator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, domain.ErrMissingCredential
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	return &Generator{
		models: client.Models,
		model:  model,
		config: &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   CompetitionListSchema(),
		},
	}, nil
}

// GenerateCompetitions sends prompt and returns the raw JSON text.
func (g *Generator) GenerateCompetitions(ctx context.Context, prompt string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	return resp.Text(), nil
}

// CompetitionListSchema is the response schema: an array of competition
// objects with every property required.
func CompetitionListSchema() *genai.Schema {
	props := make(map[string]*genai.Schema, len(domain.CompetitionFields))
	for _, name := range domain.CompetitionFields {
		props[name] = &genai.Schema{Type: genai.TypeString}
	}
	props["tags"] = &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}
	props["imageKeyword"].Description = "A single English keyword describing the competition, used to pick an image."
	props["websiteUrl"].Description = "Official website of the competition or its organizer."
	props["deadline"].Description = "Registration deadline, or TBD when unknown."

	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type:             genai.TypeObject,
			Properties:       props,
			Required:         append([]string(nil), domain.CompetitionFields...),
			PropertyOrdering: append([]string(nil), domain.CompetitionFields...),
		},
	}
}
