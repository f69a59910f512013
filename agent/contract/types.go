package contract

// StageKind identifies the three generation-backed stages for per-stage
// model configuration.
type StageKind string

const (
	StageClassifier    StageKind = "classifier"
	StagePlanExplainer StageKind = "plan_explainer"
	StageSummarizer    StageKind = "summarizer"
)
