package advisor

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// systemPrompt frames the model as the FinBot financial mentor. The user's
// snapshot is appended per request, never accumulated.
const systemPrompt = `Você é um assistente financeiro especializado e experiente chamado "FinBot". Sua missão é ajudar o usuário a melhorar sua saúde financeira com conselhos práticos e personalizados.

DIRETRIZES DE RESPOSTA:
- Seja sempre positivo e encorajador
- Use linguagem simples e acessível
- Dê conselhos práticos e acionáveis
- Personalize as respostas baseado nos dados do usuário
- Se não tiver dados suficientes, peça mais informações

Responda sempre em português brasileiro e seja um verdadeiro mentor financeiro!`

// geminiClient wraps the GenAI SDK for single-shot advisory replies.
type geminiClient struct {
	client *genai.Client
	model  string
}

// newGeminiClient builds a client for the given API key and model name.
func newGeminiClient(ctx context.Context, apiKey, model string) (*geminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &geminiClient{client: client, model: model}, nil
}

// Generate sends one message with the snapshot context and returns the
// model's reply text. Any failure is returned to the caller, which falls
// back to the rule-based composer.
func (g *geminiClient) Generate(ctx context.Context, contextBlock, message string) (string, error) {
	prompt := fmt.Sprintf(`%s

%s

Pergunta do usuário: %s

Responda como um assistente financeiro especializado, dando conselhos práticos e personalizados.`,
		systemPrompt, contextBlock, message)

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
