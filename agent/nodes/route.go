package nodes

import "strings"

// Stage names double as graph node names.
type Stage string

const (
	StagePlanExplainer      Stage = "explain_plan"
	StageKnowledgeRetrieval Stage = "retrieve_knowledge"
	StageSummarizer         Stage = "summarize"
)

// Route maps a classified intent to the next stage. It is total: anything
// that is not a plan or complaint intent, including an absent value, takes
// the direct path to the summarizer. Comparison is case-insensitive.
func Route(intent string) Stage {
	switch strings.ToLower(strings.TrimSpace(intent)) {
	case "plan":
		return StagePlanExplainer
	case "complaint":
		return StageKnowledgeRetrieval
	default:
		return StageSummarizer
	}
}
