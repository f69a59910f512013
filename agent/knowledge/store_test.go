package knowledge

import (
	"context"
	"errors"
	"testing"

	contractx "github.com/tanpawarit/telecom-support-agent/agent/contract"
)

func TestNewPgvectorStoreRequiresCollaborators(t *testing.T) {
	t.Parallel()

	if _, err := NewPgvectorStore(nil, func(ctx context.Context, text string) ([]float32, error) {
		return nil, nil
	}); err == nil {
		t.Fatal("expected an error for a nil pool")
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	t.Parallel()

	s := &PgvectorStore{embed: func(ctx context.Context, text string) ([]float32, error) {
		t.Fatal("embedder must not run for an empty query")
		return nil, nil
	}}

	if _, err := s.Search(context.Background(), "   ", 3); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSearchEmbedderFailure(t *testing.T) {
	t.Parallel()

	embedErr := errors.New("embeddings endpoint unavailable")
	s := &PgvectorStore{embed: func(ctx context.Context, text string) ([]float32, error) {
		return nil, embedErr
	}}

	if _, err := s.Search(context.Background(), "outage", 3); !errors.Is(err, embedErr) {
		t.Fatalf("expected the embedder error to propagate, got %v", err)
	}
}
