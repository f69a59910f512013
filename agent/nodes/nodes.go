// Package nodes holds the stages of the support pipeline. Each node reads
// the conversation threaded through the graph, contributes its own fields
// and transcript turns, and returns the extended state.
package nodes

import (
	"context"
	"errors"
	"strings"
	"time"

	statex "github.com/tanpawarit/telecom-support-agent/agent/state"
)

var ErrEmptyMessage = errors.New("user message is empty")

type GraphInput struct {
	UserInput string
}

type GraphOutput struct {
	Reply        string
	Conversation *statex.Conversation
}

type GraphState struct {
	Conv *statex.Conversation
}

// NewConversation validates the incoming message and seeds the per-request
// conversation state.
func NewConversation(in GraphInput) (*GraphState, error) {
	text := strings.TrimSpace(in.UserInput)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	return &GraphState{Conv: statex.New(text)}, nil
}

// callContext bounds one external call so a slow collaborator cannot stall
// the whole request. A non-positive timeout leaves the parent untouched.
func callContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
