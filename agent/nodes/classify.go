package nodes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/telecom-support-agent/agent/contract"
	"github.com/tanpawarit/telecom-support-agent/agent/extract"
	promptx "github.com/tanpawarit/telecom-support-agent/agent/prompt"
	statex "github.com/tanpawarit/telecom-support-agent/agent/state"
)

type classifierOutput struct {
	CustomerID string `json:"customer_id"`
	Intent     string `json:"intent"`
	Query      string `json:"query"`
	Reasoning  string `json:"reasoning"`
}

// ClassifyIntent derives customer id, intent and normalized query from the
// raw user message. Every downstream stage depends on a valid intent, so any
// failure here is fatal for the request: there is no silent default intent.
func ClassifyIntent(
	ctx context.Context,
	in *GraphState,
	gen contractx.Generator,
	prompts promptx.PromptSet,
	timeout time.Duration,
) (*GraphState, error) {
	if in == nil || in.Conv == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	conv := in.Conv

	question := strings.TrimSpace(conv.LastUserText())
	if question == "" {
		return nil, fmt.Errorf("%w: no user message to classify", contractx.ErrClassification)
	}

	prompt := promptx.Render(prompts.Classifier, map[string]string{
		"question": question,
	})

	callCtx, cancel := callContext(ctx, timeout)
	defer cancel()

	raw, err := gen.Generate(callCtx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: generate: %v", contractx.ErrClassification, err)
	}

	var out classifierOutput
	if err := extract.Object(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", contractx.ErrClassification, err)
	}

	intent := strings.TrimSpace(out.Intent)
	if intent == "" {
		return nil, fmt.Errorf("%w: response carries no intent", contractx.ErrClassification)
	}

	conv.CustomerID = strings.TrimSpace(out.CustomerID)
	conv.Intent = statex.Intent(intent)
	conv.UserQuery = strings.TrimSpace(out.Query)
	if conv.UserQuery == "" {
		conv.UserQuery = question
	}

	conv.AppendAssistant("Intent: " + intent)
	conv.AppendAssistant("Reasoning: " + strings.TrimSpace(out.Reasoning))
	conv.AppendAssistant("Customer ID: " + conv.CustomerID)

	log.Debug().
		Str("stage", "classify_intent").
		Str("intent", intent).
		Str("customer_id", conv.CustomerID).
		Msg("classified user message")

	return in, nil
}
