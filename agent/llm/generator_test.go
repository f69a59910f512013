package llm

import (
	"context"
	"errors"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/telecom-support-agent/agent/contract"
)

type fakeChatModel struct {
	response *schema.Message
	chunks   []*schema.Message
	err      error
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	if f.err != nil {
		return nil, f.err
	}
	return schema.StreamReaderFromArray(f.chunks), nil
}

func TestGenerateBatch(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{response: &schema.Message{Role: schema.Assistant, Content: "hello caller"}}
	gen := newGenerator(fake, false)

	out, err := gen.Generate(context.Background(), "say hello")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out != "hello caller" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestGenerateEmptyPrompt(t *testing.T) {
	t.Parallel()

	gen := newGenerator(&fakeChatModel{}, false)

	if _, err := gen.Generate(context.Background(), "   "); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestGenerateModelFailure(t *testing.T) {
	t.Parallel()

	gen := newGenerator(&fakeChatModel{err: errors.New("upstream 500")}, false)

	if _, err := gen.Generate(context.Background(), "anything"); !errors.Is(err, contractx.ErrModelInvoke) {
		t.Fatalf("expected ErrModelInvoke, got %v", err)
	}
}

func TestGenerateStreamingBuffersFully(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{chunks: []*schema.Message{
		{Role: schema.Assistant, Content: "first "},
		{Role: schema.Assistant, Content: "second "},
		{Role: schema.Assistant, Content: "third"},
	}}
	gen := newGenerator(fake, true)

	out, err := gen.Generate(context.Background(), "stream it")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out != "first second third" {
		t.Fatalf("stream not fully buffered: %q", out)
	}
}

func TestGenerateStreamingOpenFailure(t *testing.T) {
	t.Parallel()

	gen := newGenerator(&fakeChatModel{err: errors.New("connection reset")}, true)

	if _, err := gen.Generate(context.Background(), "stream it"); !errors.Is(err, contractx.ErrModelInvoke) {
		t.Fatalf("expected ErrModelInvoke, got %v", err)
	}
}
