package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ErrAssistantNotConfigured means no API key was provided at startup
var ErrAssistantNotConfigured = errors.New("assistant API key is not configured")

const assistantSystemPrompt = `You are the helpful assistant of the Pelita Schools portal.
Answer questions about the school, admissions, classes, events and how to use the portal.
Keep answers short and friendly, in the language the user writes in.
When the user asks to open a portal page, append exactly one directive
of the form [navigate:/path] at the end of your reply, using one of:
/dashboard /students /teachers /classes /settings /landing-media /events.`

// navPattern matches the navigation directive the model may emit
var navPattern = regexp.MustCompile(`\[navigate:(/[^\]\s]*)\]`)

type ChatMessage struct {
	Role    string `json:"role"` // user or assistant
	Content string `json:"content"`
}

// AssistantAction is a client-side action the assistant requested
type AssistantAction struct {
	Type   string `json:"type"`
	Target string `json:"target"`
}

type AssistantReply struct {
	Reply  string           `json:"reply"`
	Action *AssistantAction `json:"action,omitempty"`
}

// Assistant drives the portal chatbot against an OpenAI-compatible
// chat completion API.
type Assistant struct {
	client *openai.Client
	model  string
}

func NewAssistant(apiKey string) *Assistant {
	a := &Assistant{model: openai.GPT4oMini}
	if apiKey != "" {
		a.client = openai.NewClient(apiKey)
	}
	return a
}

// Chat sends the conversation history plus the system prompt and
// returns the assistant reply with any extracted navigation action.
// Transport errors surface to the caller unretried.
func (a *Assistant) Chat(ctx context.Context, history []ChatMessage) (*AssistantReply, error) {
	if a.client == nil {
		return nil, ErrAssistantNotConfigured
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: assistantSystemPrompt,
	})
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: messages,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("assistant returned no choices")
	}

	reply, action := extractAction(resp.Choices[0].Message.Content)
	return &AssistantReply{Reply: reply, Action: action}, nil
}

// extractAction strips a [navigate:/path] directive from the reply
// text and turns it into a client action.
func extractAction(reply string) (string, *AssistantAction) {
	match := navPattern.FindStringSubmatch(reply)
	if match == nil {
		return strings.TrimSpace(reply), nil
	}
	cleaned := strings.TrimSpace(navPattern.ReplaceAllString(reply, ""))
	return cleaned, &AssistantAction{Type: "navigate", Target: match[1]}
}
