package match

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// completionRequest is the part of a chat completion request the tests
// look at.
type completionRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	ResponseFormat struct {
		Type       string `json:"type"`
		JSONSchema struct {
			Name   string `json:"name"`
			Strict bool   `json:"strict"`
			Schema struct {
				Type       string `json:"type"`
				Properties struct {
					Move struct {
						Enum []string `json:"enum"`
					} `json:"move"`
				} `json:"properties"`
				Required             []string `json:"required"`
				AdditionalProperties bool     `json:"additionalProperties"`
			} `json:"schema"`
		} `json:"json_schema"`
	} `json:"response_format"`
}

// modelServer serves chat completions whose content is reply(request).
func modelServer(t *testing.T, reply func(completionRequest) string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		var request completionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			t.Error(err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		choices := []map[string]any{}
		if content := reply(request); content != "" {
			choices = append(choices, map[string]any{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"model":   request.Model,
			"choices": choices,
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestLLMPlayer(t *testing.T, server *httptest.Server) *LLMPlayer {
	t.Helper()

	player, err := NewLLMPlayer(PlayerConfig{
		Name:    "test-model",
		Model:   "test-model-7b",
		BaseURL: server.URL + "/v1",
		APIKey:  "test",
	})
	require.NoError(t, err)

	return player
}

func TestLLMPlayerMove(t *testing.T) {
	game := newUCIGame(t, StartFEN)
	query := NewQuery("game-1", game)

	var seen completionRequest
	server := modelServer(t, func(request completionRequest) string {
		seen = request
		return `{"move":"g1f3"}`
	})

	mov, err := newTestLLMPlayer(t, server).Move(context.Background(), query)
	require.NoError(t, err)
	require.Equal(t, "g1f3", mov)

	require.Equal(t, "test-model-7b", seen.Model)
	require.Len(t, seen.Messages, 1)
	require.Equal(t, "user", seen.Messages[0].Role)
	require.Equal(t, query.Prompt(), seen.Messages[0].Content)

	format := seen.ResponseFormat
	require.Equal(t, "json_schema", format.Type)
	require.True(t, format.JSONSchema.Strict)
	require.Equal(t, "object", format.JSONSchema.Schema.Type)
	require.Equal(t, []string{"move"}, format.JSONSchema.Schema.Required)
	require.False(t, format.JSONSchema.Schema.AdditionalProperties)
	require.Equal(t, query.Legal, format.JSONSchema.Schema.Properties.Move.Enum)
}

func TestLLMPlayerRawReply(t *testing.T) {
	query := NewQuery("game-1", newUCIGame(t, StartFEN))

	server := modelServer(t, func(completionRequest) string {
		return "I think e4 is best."
	})

	mov, err := newTestLLMPlayer(t, server).Move(context.Background(), query)
	require.NoError(t, err)
	require.Equal(t, "I think e4 is best.", mov)
	require.False(t, query.IsLegal(mov))
}

func TestLLMPlayerStringReply(t *testing.T) {
	query := NewQuery("game-1", newUCIGame(t, StartFEN))

	server := modelServer(t, func(completionRequest) string {
		return `"e2e4"`
	})

	mov, err := newTestLLMPlayer(t, server).Move(context.Background(), query)
	require.NoError(t, err)
	require.Equal(t, "e2e4", mov)
	require.True(t, query.IsLegal(mov))
}

func TestParseReply(t *testing.T) {
	require.Equal(t, "g1f3", parseReply(`{"move": "g1f3"}`))
	require.Equal(t, "g1f3", parseReply(`"g1f3"`))
	require.Equal(t, "g1f3", parseReply(" g1f3\n"))
	require.Equal(t, "I think e4 is best.", parseReply("I think e4 is best."))
}

func TestLLMPlayerNoChoices(t *testing.T) {
	query := NewQuery("game-1", newUCIGame(t, StartFEN))

	server := modelServer(t, func(completionRequest) string { return "" })

	_, err := newTestLLMPlayer(t, server).Move(context.Background(), query)
	require.ErrorIs(t, err, ErrNoChoices)
}

func TestLLMPlayerServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"model not loaded"}}`, http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	query := NewQuery("game-1", newUCIGame(t, StartFEN))

	_, err := newTestLLMPlayer(t, server).Move(context.Background(), query)
	require.Error(t, err)
}

func TestLLMPlayerNoLegalMoves(t *testing.T) {
	server := modelServer(t, func(completionRequest) string {
		t.Error("model asked for a move in a finished game")
		return ""
	})

	_, err := newTestLLMPlayer(t, server).Move(context.Background(), &Query{})
	require.ErrorIs(t, err, ErrNoLegalMoves)
}

func TestNewPlayer(t *testing.T) {
	_, err := NewPlayer(PlayerConfig{Name: "no-model", Kind: KindLLM})
	require.Error(t, err)

	_, err = NewPlayer(PlayerConfig{Name: "what", Kind: "engine"})
	require.Error(t, err)

	player, err := NewPlayer(PlayerConfig{Name: "dice", Kind: KindRandom})
	require.NoError(t, err)
	require.Equal(t, "dice", player.Name())

	query := NewQuery("game-1", newUCIGame(t, StartFEN))
	mov, err := player.Move(context.Background(), query)
	require.NoError(t, err)
	require.True(t, query.IsLegal(mov))
}

func TestLLMGameAgainstRandom(t *testing.T) {
	// The model always picks the first move it is offered.
	server := modelServer(t, func(request completionRequest) string {
		return `{"move":"` + request.ResponseFormat.JSONSchema.Schema.Properties.Move.Enum[0] + `"}`
	})

	m, _ := newTestMatch(t, "", newTestLLMPlayer(t, server), NewRandomPlayer("random", 3), true)

	result, err := m.Run(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, Unknown, result.Score)
}
