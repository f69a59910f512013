package contract

import (
	"context"

	statex "github.com/tanpawarit/telecom-support-agent/agent/state"
)

// Generator is the text generation port. Model, temperature and the
// streaming flag are fixed at construction; streamed output is fully
// buffered before Generate returns.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Registry hands out the per-stage generators. Stages may run on different
// models and temperatures, so each one gets its own handle.
type Registry interface {
	Classifier() Generator
	PlanExplainer() Generator
	Summarizer() Generator
}

// CustomerStore resolves exactly one customer record by id.
// A missing row is reported as ErrCustomerNotFound, not as a nil record.
type CustomerStore interface {
	Lookup(ctx context.Context, customerID string) (*statex.CustomerRecord, error)
}

// KnowledgeStore returns the top-k passages most relevant to the query,
// in the store's relevance order.
type KnowledgeStore interface {
	Search(ctx context.Context, query string, k int) ([]string, error)
}
