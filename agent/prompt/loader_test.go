package prompt

import (
	"strings"
	"testing"
)

func TestLoadPromptSet(t *testing.T) {
	t.Parallel()

	set := LoadPromptSet()
	for name, content := range map[string]string{
		"classifier":           set.Classifier,
		"plan_explainer":       set.PlanExplainer,
		"summarizer_plan":      set.SummarizerPlan,
		"summarizer_complaint": set.SummarizerComplaint,
		"summarizer_other":     set.SummarizerOther,
	} {
		if strings.TrimSpace(content) == "" {
			t.Fatalf("prompt %s is empty", name)
		}
	}

	if !strings.Contains(set.Classifier, "{question}") {
		t.Fatal("classifier prompt lost its question placeholder")
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	out := Render("Hello {name}, about {topic}: {\"x\": 1}", map[string]string{
		"name":  "Ann",
		"topic": "plans",
	})
	if out != `Hello Ann, about plans: {"x": 1}` {
		t.Fatalf("unexpected render: %s", out)
	}

	// Unknown placeholders stay visible.
	if got := Render("{missing}", map[string]string{"name": "x"}); got != "{missing}" {
		t.Fatalf("unexpected render of unknown placeholder: %s", got)
	}
}
