package nodes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/telecom-support-agent/agent/contract"
)

// LookupCustomer resolves the customer record for the classified id. Every
// outcome here is recoverable: downstream stages tolerate an absent record,
// so a missing id, a missing row or a store failure each leave a transcript
// note and let the pipeline continue.
func LookupCustomer(
	ctx context.Context,
	in *GraphState,
	store contractx.CustomerStore,
	timeout time.Duration,
) (*GraphState, error) {
	if in == nil || in.Conv == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	conv := in.Conv

	if conv.CustomerID == "" {
		conv.AppendAssistant("Customer ID is missing.")
		return in, nil
	}

	callCtx, cancel := callContext(ctx, timeout)
	defer cancel()

	rec, err := store.Lookup(callCtx, conv.CustomerID)
	switch {
	case errors.Is(err, contractx.ErrCustomerNotFound):
		conv.AppendAssistant(fmt.Sprintf("No customer record found for %s.", conv.CustomerID))
		return in, nil
	case err != nil:
		log.Warn().Err(err).
			Str("stage", "lookup_customer").
			Str("customer_id", conv.CustomerID).
			Msg("customer lookup failed")
		conv.AppendAssistant(fmt.Sprintf("Customer lookup failed for %s; continuing without the record.", conv.CustomerID))
		return in, nil
	}

	conv.Customer = rec
	conv.AppendAssistant(fmt.Sprintf("Customer record loaded for %s (%s).", rec.CustomerID, rec.Name))
	return in, nil
}
