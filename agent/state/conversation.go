package state

import "strings"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry of the conversation transcript. The transcript is
// append-only; insertion order is the display order.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Intent is the classification label assigned once by the intent classifier.
// Routing compares it case-insensitively, so the raw classifier wording is
// preserved here.
type Intent string

const (
	IntentPlan      Intent = "plan"
	IntentComplaint Intent = "complaint"
	IntentOther     Intent = "other"
)

func (i Intent) Is(other Intent) bool {
	return strings.EqualFold(strings.TrimSpace(string(i)), string(other))
}

// CustomerRecord mirrors one row of the customers table. The key set is
// fixed; absent record means the lookup stage could not resolve one.
type CustomerRecord struct {
	CustomerID         string `json:"customer_id"`
	Name               string `json:"name"`
	Age                int    `json:"age"`
	Gender             string `json:"gender"`
	Location           string `json:"location"`
	PlanSubscribed     string `json:"plan_subscribed"`
	Device             string `json:"device"`
	PlanDetails        string `json:"plan_details"`
	NetworkType        string `json:"network_type"`
	JoinDate           string `json:"join_date"`
	LastReportedIssue  string `json:"last_reported_issue"`
	ResolutionProvided string `json:"resolution_provided"`
}

// PlanSummary is the structured result of the plan explanation stage.
type PlanSummary struct {
	PlanDetails             string `json:"plan_details"`
	QueryResponse           string `json:"query_response"`
	CrossSellRecommendation string `json:"cross_sell_recommendation"`
	Reasoning               string `json:"reasoning"`
}

// HasCrossSell reports whether the recommendation is worth surfacing to the
// customer. Models answer "none" or "N/A" when there is nothing to sell.
func (p *PlanSummary) HasCrossSell() bool {
	if p == nil {
		return false
	}
	rec := strings.ToLower(strings.TrimSpace(p.CrossSellRecommendation))
	switch rec {
	case "", "none", "n/a", "na", "no recommendation":
		return false
	}
	return true
}

// Conversation is the per-request state threaded through the pipeline.
// It is created fresh for every incoming message, never shared between
// requests, and discarded once the reply is returned.
//
// Field ownership: CustomerID, Intent and UserQuery are written once by the
// classifier; Customer by the lookup stage; exactly one of PlanSummary or
// Passages by the routed content stage; FinalReply last, by the summarizer.
type Conversation struct {
	Transcript []Turn `json:"transcript"`

	CustomerID string `json:"customer_id,omitempty"`
	Intent     Intent `json:"intent,omitempty"`
	UserQuery  string `json:"user_query,omitempty"`

	Customer    *CustomerRecord `json:"customer_record,omitempty"`
	Passages    []string        `json:"retrieved_passages,omitempty"`
	PlanSummary *PlanSummary    `json:"plan_summary,omitempty"`

	FinalReply string `json:"final_reply,omitempty"`
}

// New seeds a conversation with the incoming user message as its first turn.
func New(userInput string) *Conversation {
	c := &Conversation{}
	c.Append(RoleUser, userInput)
	return c
}

func (c *Conversation) Append(role Role, text string) {
	c.Transcript = append(c.Transcript, Turn{Role: role, Text: text})
}

func (c *Conversation) AppendAssistant(text string) {
	c.Append(RoleAssistant, text)
}

// LastUserText returns the text of the most recent user turn, or "" when the
// transcript holds none.
func (c *Conversation) LastUserText() string {
	for i := len(c.Transcript) - 1; i >= 0; i-- {
		if c.Transcript[i].Role == RoleUser {
			return c.Transcript[i].Text
		}
	}
	return ""
}
