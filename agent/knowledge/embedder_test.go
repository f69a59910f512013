package knowledge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

func TestOpenAIEmbedder(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"object": "list",
			"model":  "text-embedding-3-small",
			"data": []map[string]any{
				{
					"object":    "embedding",
					"index":     0,
					"embedding": []float64{0.25, -0.5, 1.0},
				},
			},
			"usage": map[string]any{"prompt_tokens": 3, "total_tokens": 3},
		})
	}))
	defer srv.Close()

	client := openaisdk.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(srv.URL),
	)
	embed := NewOpenAIEmbedder(&client, "text-embedding-3-small")

	vec, err := embed(context.Background(), "my internet is down")
	if err != nil {
		t.Fatalf("embed error = %v", err)
	}
	if len(vec) != 3 || vec[0] != 0.25 || vec[1] != -0.5 || vec[2] != 1.0 {
		t.Fatalf("unexpected vector: %#v", vec)
	}
	if gotPath != "/embeddings" {
		t.Fatalf("unexpected request path: %s", gotPath)
	}
}

func TestOpenAIEmbedderEmptyInput(t *testing.T) {
	t.Parallel()

	client := openaisdk.NewClient(option.WithAPIKey("test-key"))
	embed := NewOpenAIEmbedder(&client, "text-embedding-3-small")

	if _, err := embed(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty input")
	}
}
