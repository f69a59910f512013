package llm

import (
	"context"
	"fmt"

	contractx "github.com/tanpawarit/telecom-support-agent/agent/contract"
)

type registryImpl struct {
	classifier    contractx.Generator
	planExplainer contractx.Generator
	summarizer    contractx.Generator
}

func (r *registryImpl) Classifier() contractx.Generator {
	return r.classifier
}

func (r *registryImpl) PlanExplainer() contractx.Generator {
	return r.planExplainer
}

func (r *registryImpl) Summarizer() contractx.Generator {
	return r.summarizer
}

// NewRegistry builds one generator per generation-backed stage. The chat
// models are constructed once and shared across requests; they are safe for
// concurrent use.
func NewRegistry(ctx context.Context, cfg Config) (contractx.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stages := []contractx.StageKind{
		contractx.StageClassifier,
		contractx.StagePlanExplainer,
		contractx.StageSummarizer,
	}

	generators := make(map[contractx.StageKind]contractx.Generator, len(stages))
	for _, stage := range stages {
		modelCfg := cfg.OpenRouterFor(stage)
		chatModel, err := modelCfg.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: create model for stage=%s: %v", contractx.ErrModelInvoke, stage, err)
		}
		generators[stage] = newGenerator(chatModel, cfg.Streaming)
	}

	return &registryImpl{
		classifier:    generators[contractx.StageClassifier],
		planExplainer: generators[contractx.StagePlanExplainer],
		summarizer:    generators[contractx.StageSummarizer],
	}, nil
}
