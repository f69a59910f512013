package nodes

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/telecom-support-agent/agent/contract"
	"github.com/tanpawarit/telecom-support-agent/agent/extract"
	promptx "github.com/tanpawarit/telecom-support-agent/agent/prompt"
	statex "github.com/tanpawarit/telecom-support-agent/agent/state"
)

// planReference is the fixed plan-tier table embedded in every plan
// explanation prompt.
const planReference = `1. Basic Plan: $20-$30/month, includes 5 GB high-speed data, unlimited calls, 1000 SMS/month, 128 Kbps after limit, no roaming.
2. Unlimited Plan: $30-$50/month, truly unlimited data (FUP after 50 GB), unlimited calls/SMS, 1 Mbps post-FUP, 5G, cloud storage, hotspot.
3. Family Plan: $60-$100/month for 3-5 lines, shared 50-100 GB data, unlimited calls/SMS, 256 Kbps post-limit, includes parental controls.
4. Premium Plan: $40-$60/month, unlimited high-speed (throttled after 100 GB), includes international calls, priority support, streaming.
5. Data-Only Plan: $15-$25/month, 10-20 GB high-speed data, no calls/SMS, 512 Kbps post-limit, supports tethering and hotspots.`

// ExplainPlan produces a structured summary of the customer's plan plus an
// upsell recommendation. Generation and parsing failures are recoverable:
// the summarizer treats a missing plan summary as "no structured plan
// result" and falls back to a generic acknowledgment.
func ExplainPlan(
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

	customerData := "not available"
	if conv.Customer != nil {
		if encoded, err := json.Marshal(conv.Customer); err == nil {
			customerData = string(encoded)
		}
	}

	prompt := promptx.Render(prompts.PlanExplainer, map[string]string{
		"plan_info":     planReference,
		"customer_data": customerData,
		"query":         conv.UserQuery,
		"customer_id":   conv.CustomerID,
	})

	callCtx, cancel := callContext(ctx, timeout)
	defer cancel()

	raw, err := gen.Generate(callCtx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("stage", "explain_plan").Msg("plan explanation generate failed")
		conv.AppendAssistant("Plan explanation unavailable: the generation call failed.")
		return in, nil
	}

	var summary statex.PlanSummary
	if err := extract.Object(raw, &summary); err != nil {
		conv.AppendAssistant(fmt.Sprintf("%s\n\nParsing error: %v", raw, err))
		return in, nil
	}

	conv.PlanSummary = &summary

	if encoded, err := json.Marshal(&summary); err == nil {
		conv.AppendAssistant(string(encoded))
	} else {
		conv.AppendAssistant(summary.PlanDetails)
	}
	return in, nil
}
