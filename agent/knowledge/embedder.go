package knowledge

import (
	"context"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"
)

// Embedder turns a query into the vector used for similarity search.
type Embedder func(ctx context.Context, text string) ([]float32, error)

// NewOpenAIEmbedder embeds queries through the OpenAI embeddings endpoint.
// The client may point at any OpenAI-compatible gateway.
func NewOpenAIEmbedder(client *openaisdk.Client, model string) Embedder {
	return func(ctx context.Context, text string) ([]float32, error) {
		if client == nil {
			return nil, fmt.Errorf("embedding client is not configured")
		}
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("embedding input is empty")
		}

		resp, err := client.Embeddings.New(ctx, openaisdk.EmbeddingNewParams{
			Input: openaisdk.EmbeddingNewParamsInputUnion{
				OfString: openaisdk.String(text),
			},
			Model: openaisdk.EmbeddingModel(model),
		})
		if err != nil {
			return nil, fmt.Errorf("create embedding: %w", err)
		}
		if len(resp.Data) == 0 {
			return nil, fmt.Errorf("embedding response has no data")
		}

		raw := resp.Data[0].Embedding
		vec := make([]float32, len(raw))
		for i, v := range raw {
			vec[i] = float32(v)
		}
		return vec, nil
	}
}
