package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/telecom-support-agent/agent/contract"
)

// generator adapts an eino chat model to the prompt-in/text-out port.
// When streaming is enabled the stream is fully buffered before returning,
// so callers see the same batch contract either way.
type generator struct {
	model     einomodel.BaseChatModel
	streaming bool
}

func newGenerator(model einomodel.BaseChatModel, streaming bool) *generator {
	return &generator{model: model, streaming: streaming}
}

var _ contractx.Generator = (*generator)(nil)

func (g *generator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt is empty", contractx.ErrValidation)
	}

	msgs := []*schema.Message{schema.UserMessage(prompt)}

	if g.streaming {
		return g.generateStreaming(ctx, msgs)
	}

	out, err := g.model.Generate(ctx, msgs)
	if err != nil {
		return "", fmt.Errorf("%w: %v", contractx.ErrModelInvoke, err)
	}
	if out == nil {
		return "", fmt.Errorf("%w: model returned nil message", contractx.ErrModelInvoke)
	}
	return out.Content, nil
}

func (g *generator) generateStreaming(ctx context.Context, msgs []*schema.Message) (string, error) {
	reader, err := g.model.Stream(ctx, msgs)
	if err != nil {
		return "", fmt.Errorf("%w: open stream: %v", contractx.ErrModelInvoke, err)
	}
	defer reader.Close()

	var chunks []*schema.Message
	for {
		chunk, err := reader.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: receive stream chunk: %v", contractx.ErrModelInvoke, err)
		}
		chunks = append(chunks, chunk)
	}
	if len(chunks) == 0 {
		return "", fmt.Errorf("%w: empty stream", contractx.ErrModelInvoke)
	}

	full, err := schema.ConcatMessages(chunks)
	if err != nil {
		return "", fmt.Errorf("%w: concat stream chunks: %v", contractx.ErrModelInvoke, err)
	}
	return full.Content, nil
}
