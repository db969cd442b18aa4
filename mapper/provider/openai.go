// Package provider implements the classifier capability against any
// OpenAI-compatible chat completions endpoint. Groq (which the deployment
// targets) speaks the same wire protocol, selected via BaseURL.
package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/theimaginaryfoundation/taxonomy-bot/mapper"
	"github.com/theimaginaryfoundation/taxonomy-bot/mapper/fileutils"
)

// Config selects the endpoint and model for classification calls.
type Config struct {
	APIKey  string
	BaseURL string // empty means the default OpenAI endpoint
	Model   string

	Temperature     float64 // low values keep the verdict stable
	MaxOutputTokens int64
}

func (c Config) validate() error {
	if c.APIKey == "" {
		return errors.New("provider: missing API key")
	}
	if c.Model == "" {
		return errors.New("provider: missing model")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return errors.New("provider: temperature must be in [0,2]")
	}
	if c.MaxOutputTokens < 0 {
		return errors.New("provider: max output tokens must be >= 0")
	}
	return nil
}

// Classifier sends one structured-output completion per Classify call.
// There is deliberately no retry here: a failed call degrades that one
// case, and resilience is a surrounding concern.
type Classifier struct {
	client *openai.Client
	cfg    Config
}

// New builds a Classifier from cfg.
func New(cfg Config) (*Classifier, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.MaxOutputTokens == 0 {
		cfg.MaxOutputTokens = 500
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := openai.NewClient(opts...)
	return &Classifier{client: &client, cfg: cfg}, nil
}

// classifyReply is the schema the model must fill. Raw model output — the
// category is validated downstream, never trusted here.
type classifyReply struct {
	MappedCategory string  `json:"mapped_category"`
	Confidence     float64 `json:"confidence"`
	Reasoning      string  `json:"reasoning"`
}

var classifySchema = generateSchema[classifyReply]()

// Classify implements mapper.Classifier with a single structured call.
func (c *Classifier) Classify(ctx context.Context, prompt string) (mapper.Verdict, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.cfg.Temperature),
		MaxTokens:   openai.Int(c.cfg.MaxOutputTokens),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "StoryClassification",
					Description: openai.String("Taxonomy classification verdict"),
					Schema:      classifySchema,
					Strict:      openai.Bool(true),
				},
			},
		},
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return mapper.Verdict{}, fmt.Errorf("completion call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return mapper.Verdict{}, errors.New("completion returned no choices")
	}

	var reply classifyReply
	if err := fileutils.DecodeModelJSON(resp.Choices[0].Message.Content, &reply); err != nil {
		return mapper.Verdict{}, fmt.Errorf("parse model reply: %w", err)
	}

	return mapper.Verdict{
		Category:   strings.TrimSpace(reply.MappedCategory),
		Confidence: reply.Confidence,
		Reasoning:  strings.TrimSpace(reply.Reasoning),
		TokensUsed: int(resp.Usage.TotalTokens),
	}, nil
}
