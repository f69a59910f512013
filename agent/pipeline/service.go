// Package pipeline composes the support stages into a directed flow and
// executes it once per request.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/eino/compose"
	contractx "github.com/tanpawarit/telecom-support-agent/agent/contract"
	nodex "github.com/tanpawarit/telecom-support-agent/agent/nodes"
	promptx "github.com/tanpawarit/telecom-support-agent/agent/prompt"
)

var ErrEmptyMessage = nodex.ErrEmptyMessage

type Config struct {
	// TopK bounds the passage count fetched per complaint. The lighter
	// single-passage variant is a deployment choice, not a code change.
	TopK        int           `envconfig:"TOP_K" split_words:"true" default:"5"`
	CallTimeout time.Duration `envconfig:"CALL_TIMEOUT" split_words:"true" default:"30s"`
}

// Pipeline routes one customer message through classification, lookup, the
// intent-selected content stage, and summarization. The collaborator
// handles are shared across requests; per-request state never is.
type Pipeline struct {
	models    contractx.Registry
	customers contractx.CustomerStore
	knowledge contractx.KnowledgeStore
	prompts   promptx.PromptSet

	topK        int
	callTimeout time.Duration

	runner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]
}

func New(
	models contractx.Registry,
	customers contractx.CustomerStore,
	knowledge contractx.KnowledgeStore,
	cfg Config,
) (*Pipeline, error) {
	if models == nil {
		return nil, errors.New("model registry is required")
	}
	if customers == nil {
		return nil, errors.New("customer store is required")
	}
	if knowledge == nil {
		return nil, errors.New("knowledge store is required")
	}

	topK := cfg.TopK
	if topK <= 0 {
		topK = 5
	}
	callTimeout := cfg.CallTimeout
	if callTimeout <= 0 {
		callTimeout = 30 * time.Second
	}

	p := &Pipeline{
		models:      models,
		customers:   customers,
		knowledge:   knowledge,
		prompts:     promptx.LoadPromptSet(),
		topK:        topK,
		callTimeout: callTimeout,
	}

	runner, err := p.compileGraph(context.Background())
	if err != nil {
		return nil, err
	}
	p.runner = runner

	return p, nil
}

// HandleMessage runs the pipeline once and returns the final reply. The
// only error cases are an empty message and a failed intent classification;
// every other stage failure resolves into the reply itself.
func (p *Pipeline) HandleMessage(ctx context.Context, userInput string) (string, error) {
	out, err := p.Run(ctx, userInput)
	if err != nil {
		return "", err
	}
	return out.Reply, nil
}

// Run is HandleMessage plus access to the finished conversation, whose
// transcript is the audit trail of the request.
func (p *Pipeline) Run(ctx context.Context, userInput string) (nodex.GraphOutput, error) {
	return p.runner.Invoke(ctx, nodex.GraphInput{UserInput: userInput})
}
