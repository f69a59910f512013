package nodes

import "testing"

func TestRoute(t *testing.T) {
	t.Parallel()

	cases := []struct {
		intent string
		want   Stage
	}{
		{"plan", StagePlanExplainer},
		{"PLAN", StagePlanExplainer},
		{"  Plan  ", StagePlanExplainer},
		{"complaint", StageKnowledgeRetrieval},
		{"Complaint", StageKnowledgeRetrieval},
		{"other", StageSummarizer},
		{"", StageSummarizer},
		{"billing", StageSummarizer},
		{"greeting", StageSummarizer},
	}

	for _, tc := range cases {
		if got := Route(tc.intent); got != tc.want {
			t.Fatalf("Route(%q) = %s, want %s", tc.intent, got, tc.want)
		}
	}
}
