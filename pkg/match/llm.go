package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoLegalMoves = errors.New("player: no legal moves to choose from")
	ErrNoChoices    = errors.New("player: model returned no choices")
)

// LLMPlayer asks a language model served behind an OpenAI-compatible chat
// completions API for its moves. The reply is constrained to the legal
// moves with a JSON schema response format whose single property is an
// enum of the legal moves.
type LLMPlayer struct {
	config PlayerConfig
	client *openai.Client
}

var _ Player = (*LLMPlayer)(nil)

func NewLLMPlayer(config PlayerConfig) (*LLMPlayer, error) {
	if config.Model == "" {
		return nil, fmt.Errorf("new player %s: no model given", config.Name)
	}

	client := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		client.BaseURL = config.BaseURL
	}

	return &LLMPlayer{
		config: config,
		client: openai.NewClientWithConfig(client),
	}, nil
}

func (player *LLMPlayer) Name() string {
	return player.config.Name
}

// choice is the shape of the model's reply.
type choice struct {
	Move string `json:"move"`
}

// ChoiceSchema returns the JSON schema which restricts a reply to exactly
// one of the given moves.
func ChoiceSchema(moves []string) *jsonschema.Definition {
	return &jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"move": {
				Type:        jsonschema.String,
				Description: "The chosen move in UCI notation.",
				Enum:        moves,
			},
		},
		Required:             []string{"move"},
		AdditionalProperties: false,
	}
}

func (player *LLMPlayer) Move(ctx context.Context, query *Query) (string, error) {
	if len(query.Legal) == 0 {
		return "", ErrNoLegalMoves
	}

	if player.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, player.config.Timeout)
		defer cancel()
	}

	prompt := query.Prompt()
	logrus.Debugf("info: (%s)< %s", player.config.Name, prompt)

	response, err := player.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: player.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: player.config.Temperature,
		MaxTokens:   player.config.MaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "chess_move",
				Schema: ChoiceSchema(query.Legal),
				Strict: true,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", player.config.Name, err)
	}

	if len(response.Choices) == 0 {
		return "", ErrNoChoices
	}

	content := response.Choices[0].Message.Content
	logrus.Debugf("info: (%s)> %s", player.config.Name, content)

	return parseReply(content), nil
}

// parseReply extracts the move from a model's reply. Replies which aren't
// the schema's object are accepted as a bare JSON string or as raw text;
// the caller rejects them unless they name a legal move.
func parseReply(content string) string {
	var reply choice
	if err := json.Unmarshal([]byte(content), &reply); err == nil {
		return reply.Move
	}

	var move string
	if err := json.Unmarshal([]byte(content), &move); err == nil {
		return move
	}

	return strings.TrimSpace(content)
}
