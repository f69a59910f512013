package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/classifier.txt
	classifierRaw string

	//go:embed template/plan_explainer.txt
	planExplainerRaw string

	//go:embed template/summarizer_plan.txt
	summarizerPlanRaw string

	//go:embed template/summarizer_complaint.txt
	summarizerComplaintRaw string

	//go:embed template/summarizer_other.txt
	summarizerOtherRaw string
)

// PromptSet holds loaded prompt content for every generation-backed stage.
type PromptSet struct {
	Classifier          string
	PlanExplainer       string
	SummarizerPlan      string
	SummarizerComplaint string
	SummarizerOther     string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
// Safe to call concurrently; the embed is compile-time.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Classifier:          strings.TrimSpace(classifierRaw),
		PlanExplainer:       strings.TrimSpace(planExplainerRaw),
		SummarizerPlan:      strings.TrimSpace(summarizerPlanRaw),
		SummarizerComplaint: strings.TrimSpace(summarizerComplaintRaw),
		SummarizerOther:     strings.TrimSpace(summarizerOtherRaw),
	}
}

// Render substitutes {name} placeholders with the given values. Unknown
// placeholders are left untouched so a missing variable is visible in the
// rendered prompt rather than silently blanked.
func Render(template string, vars map[string]string) string {
	if len(vars) == 0 {
		return template
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
