package nodes

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/telecom-support-agent/agent/contract"
	promptx "github.com/tanpawarit/telecom-support-agent/agent/prompt"
	statex "github.com/tanpawarit/telecom-support-agent/agent/state"
)

// Reasoning models wrap their chain of thought in <think> blocks; those
// never belong in a customer-facing reply.
var thinkBlockRe = regexp.MustCompile(`(?s)<think>.*?</think>`)

// FallbackReply is the terminal-stage canned answer: the caller contract
// requires a non-empty reply even when the summarizer's own generation call
// fails.
const FallbackReply = "We're sorry - something went wrong while preparing your reply. Please try again in a moment."

// Summarize turns whichever upstream structured result exists into the
// final natural-language reply. This is the terminal stage: it always sets
// a non-empty final reply.
func Summarize(
	ctx context.Context,
	in *GraphState,
	gen contractx.Generator,
	prompts promptx.PromptSet,
	timeout time.Duration,
) (GraphOutput, error) {
	if in == nil || in.Conv == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	conv := in.Conv

	prompt := summaryPrompt(conv, prompts)

	callCtx, cancel := callContext(ctx, timeout)
	defer cancel()

	reply := ""
	raw, err := gen.Generate(callCtx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("stage", "summarize").Msg("summary generate failed, using fallback reply")
	} else {
		reply = strings.TrimSpace(thinkBlockRe.ReplaceAllString(raw, ""))
	}
	if reply == "" {
		reply = FallbackReply
	}

	conv.FinalReply = reply
	conv.AppendAssistant(reply)

	return GraphOutput{Reply: reply, Conversation: conv}, nil
}

func summaryPrompt(conv *statex.Conversation, prompts promptx.PromptSet) string {
	vars := map[string]string{
		"customer_id": orDefault(conv.CustomerID, "Unknown"),
		"query":       orDefault(conv.UserQuery, "N/A"),
	}

	switch {
	case conv.Intent.Is(statex.IntentPlan):
		planDetails, queryResponse, crossSell := "N/A", "N/A", ""
		if s := conv.PlanSummary; s != nil {
			planDetails = orDefault(s.PlanDetails, "N/A")
			queryResponse = orDefault(s.QueryResponse, "N/A")
			if s.HasCrossSell() {
				crossSell = s.CrossSellRecommendation
			}
		}
		vars["plan_details"] = planDetails
		vars["query_response"] = queryResponse
		vars["cross_sell_recommendation"] = crossSell
		return promptx.Render(prompts.SummarizerPlan, vars)

	case conv.Intent.Is(statex.IntentComplaint):
		vars["context"] = strings.Join(conv.Passages, "\n\n")
		resolution := ""
		if conv.Customer != nil {
			resolution = conv.Customer.ResolutionProvided
		}
		vars["resolution"] = resolution
		return promptx.Render(prompts.SummarizerComplaint, vars)

	default:
		return promptx.Render(prompts.SummarizerOther, vars)
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
