package nodes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/telecom-support-agent/agent/contract"
)

// RetrieveKnowledge fetches the top-k passages supporting the complaint
// query, preserving the store's relevance order. An empty query or a store
// failure is recoverable; the summarizer copes with absent context.
func RetrieveKnowledge(
	ctx context.Context,
	in *GraphState,
	store contractx.KnowledgeStore,
	k int,
	timeout time.Duration,
) (*GraphState, error) {
	if in == nil || in.Conv == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	conv := in.Conv

	query := strings.TrimSpace(conv.UserQuery)
	if query == "" {
		conv.AppendAssistant("No query found to retrieve context.")
		return in, nil
	}

	callCtx, cancel := callContext(ctx, timeout)
	defer cancel()

	passages, err := store.Search(callCtx, query, k)
	if err != nil {
		log.Warn().Err(err).
			Str("stage", "retrieve_knowledge").
			Str("query", query).
			Msg("knowledge search failed")
		conv.AppendAssistant("Knowledge lookup failed; continuing without supporting context.")
		return in, nil
	}
	if len(passages) == 0 {
		conv.AppendAssistant("No supporting context found for the query.")
		return in, nil
	}

	conv.Passages = passages
	conv.AppendAssistant(strings.Join(passages, "\n\n"))
	return in, nil
}
