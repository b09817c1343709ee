package generator

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"google.golang.org/genai"

	"prompt-gallery/apperr"
	"prompt-gallery/config"
)

// GenerateInput carries the form fields of the prompt generator tool.
// Only Subject is required; empty or "None" fields are skipped.
type GenerateInput struct {
	MediaType    string `json:"media_type"`
	TargetEngine string `json:"target_engine"`
	AspectRatio  string `json:"aspect_ratio"`
	Subject      string `json:"subject"`
	Action       string `json:"action"`
	Setting      string `json:"setting"`
	Era          string `json:"era"`
	Medium       string `json:"medium"`
	Texture      string `json:"texture"`
	Lighting     string `json:"lighting"`
	TimeOfDay    string `json:"time_of_day"`
	Weather      string `json:"weather"`
	CameraAngle  string `json:"camera_angle"`
	Composition  string `json:"composition"`
	Lens         string `json:"lens"`
	FilmStock    string `json:"film_stock"`
	ColorGrading string `json:"color_grading"`
	VFX          string `json:"vfx"`
	RenderEngine string `json:"render_engine"`
	Mood         string `json:"mood"`
	CameraMotion string `json:"camera_motion"`
}

type GenerateResult struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt"`
}

type EnhanceInput struct {
	OriginalPrompt   string `json:"original_prompt"`
	MediaType        string `json:"media_type"`
	TargetEngine     string `json:"target_engine"`
	EnhancementStyle string `json:"enhancement_style"`
}

type EnhanceResult struct {
	EnhancedPrompt string `json:"enhanced_prompt"`
	NegativePrompt string `json:"negative_prompt"`
}

type NegativeInput struct {
	MediaType    string `json:"media_type"`
	TargetEngine string `json:"target_engine"`
	AvoidStyle   string `json:"avoid_style"`
	BaseContext  string `json:"base_context"`
	SpecificBans string `json:"specific_bans"`
}

type NegativeResult struct {
	NegativePrompt string `json:"negative_prompt"`
}

// Client forwards prompt-engineering requests to the Gemini API. Every
// call carries an explicit timeout and fails closed.
type Client struct {
	apiKey  string
	model   string
	timeout time.Duration
}

func NewClient(cfg config.AppConfig) *Client {
	timeout := time.Duration(cfg.Generator.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:  cfg.GeminiAPIKey,
		model:   cfg.Generator.Model,
		timeout: timeout,
	}
}

func (c *Client) Generate(ctx context.Context, in GenerateInput) (*GenerateResult, error) {
	if strings.TrimSpace(in.Subject) == "" {
		return nil, apperr.NewValidation("subject")
	}
	system, user := BuildGenerateInstruction(in)
	raw, err := c.call(ctx, system, user)
	if err != nil {
		return nil, err
	}
	var out GenerateResult
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, apperr.NewUpstream("prompt generation", err)
	}
	return &out, nil
}

func (c *Client) Enhance(ctx context.Context, in EnhanceInput) (*EnhanceResult, error) {
	if strings.TrimSpace(in.OriginalPrompt) == "" {
		return nil, apperr.NewValidation("original_prompt")
	}
	system := BuildEnhanceInstruction(in)
	user := `Please enhance this idea: "` + in.OriginalPrompt + `"`
	raw, err := c.call(ctx, system, user)
	if err != nil {
		return nil, err
	}
	var out EnhanceResult
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, apperr.NewUpstream("prompt enhancement", err)
	}
	return &out, nil
}

func (c *Client) GenerateNegative(ctx context.Context, in NegativeInput) (*NegativeResult, error) {
	system := BuildNegativeInstruction(in)
	raw, err := c.call(ctx, system, "Generate the ultimate negative prompt for this setup.")
	if err != nil {
		return nil, err
	}
	var out NegativeResult
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, apperr.NewUpstream("negative prompt generation", err)
	}
	return &out, nil
}

func (c *Client) call(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: c.apiKey})
	if err != nil {
		return "", apperr.NewUpstream("generator client init", err)
	}

	result, err := client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		},
	)
	if err != nil {
		return "", apperr.NewUpstream("generator call", err)
	}
	return StripFences(result.Text()), nil
}

// StripFences tolerates models that wrap JSON in a markdown code block
// despite instructions.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
