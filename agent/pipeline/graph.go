package pipeline

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"
	nodex "github.com/tanpawarit/telecom-support-agent/agent/nodes"
)

func (p *Pipeline) compileGraph(ctx context.Context) (compose.Runnable[nodex.GraphInput, nodex.GraphOutput], error) {
	graph := compose.NewGraph[nodex.GraphInput, nodex.GraphOutput]()

	if err := graph.AddLambdaNode("new_conversation",
		compose.InvokableLambda(func(ctx context.Context, in nodex.GraphInput) (*nodex.GraphState, error) {
			return nodex.NewConversation(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node new_conversation: %w", err)
	}

	if err := graph.AddLambdaNode("classify_intent",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.ClassifyIntent(ctx, in, p.models.Classifier(), p.prompts, p.callTimeout)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node classify_intent: %w", err)
	}

	if err := graph.AddLambdaNode("lookup_customer",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.LookupCustomer(ctx, in, p.customers, p.callTimeout)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node lookup_customer: %w", err)
	}

	if err := graph.AddLambdaNode(string(nodex.StagePlanExplainer),
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.ExplainPlan(ctx, in, p.models.PlanExplainer(), p.prompts, p.callTimeout)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node explain_plan: %w", err)
	}

	if err := graph.AddLambdaNode(string(nodex.StageKnowledgeRetrieval),
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.RetrieveKnowledge(ctx, in, p.knowledge, p.topK, p.callTimeout)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node retrieve_knowledge: %w", err)
	}

	if err := graph.AddLambdaNode(string(nodex.StageSummarizer),
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (nodex.GraphOutput, error) {
			return nodex.Summarize(ctx, in, p.models.Summarizer(), p.prompts, p.callTimeout)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node summarize: %w", err)
	}

	// Single-choice branch on the classified intent. The router is pure and
	// total, so the branch function cannot fail.
	branch := compose.NewGraphBranch(
		func(ctx context.Context, in *nodex.GraphState) (string, error) {
			if in == nil || in.Conv == nil {
				return string(nodex.StageSummarizer), nil
			}
			return string(nodex.Route(string(in.Conv.Intent))), nil
		},
		map[string]bool{
			string(nodex.StagePlanExplainer):      true,
			string(nodex.StageKnowledgeRetrieval): true,
			string(nodex.StageSummarizer):         true,
		},
	)

	if err := graph.AddEdge(compose.START, "new_conversation"); err != nil {
		return nil, fmt.Errorf("add edge start->new_conversation: %w", err)
	}
	if err := graph.AddEdge("new_conversation", "classify_intent"); err != nil {
		return nil, fmt.Errorf("add edge new_conversation->classify_intent: %w", err)
	}
	if err := graph.AddEdge("classify_intent", "lookup_customer"); err != nil {
		return nil, fmt.Errorf("add edge classify_intent->lookup_customer: %w", err)
	}
	if err := graph.AddBranch("lookup_customer", branch); err != nil {
		return nil, fmt.Errorf("add intent branch: %w", err)
	}
	if err := graph.AddEdge(string(nodex.StagePlanExplainer), string(nodex.StageSummarizer)); err != nil {
		return nil, fmt.Errorf("add edge explain_plan->summarize: %w", err)
	}
	if err := graph.AddEdge(string(nodex.StageKnowledgeRetrieval), string(nodex.StageSummarizer)); err != nil {
		return nil, fmt.Errorf("add edge retrieve_knowledge->summarize: %w", err)
	}
	if err := graph.AddEdge(string(nodex.StageSummarizer), compose.END); err != nil {
		return nil, fmt.Errorf("add edge summarize->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("support.pipeline"))
	if err != nil {
		return nil, fmt.Errorf("compile support pipeline graph: %w", err)
	}
	return runner, nil
}
