package state

import "testing"

func TestNewSeedsUserTurn(t *testing.T) {
	t.Parallel()

	conv := New("my internet is down")

	if len(conv.Transcript) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(conv.Transcript))
	}
	if conv.Transcript[0].Role != RoleUser {
		t.Fatalf("unexpected role: %s", conv.Transcript[0].Role)
	}
	if conv.Transcript[0].Text != "my internet is down" {
		t.Fatalf("unexpected text: %q", conv.Transcript[0].Text)
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	t.Parallel()

	conv := New("first")
	conv.AppendAssistant("second")
	conv.Append(RoleUser, "third")

	if len(conv.Transcript) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(conv.Transcript))
	}
	if conv.Transcript[1].Role != RoleAssistant || conv.Transcript[1].Text != "second" {
		t.Fatalf("unexpected middle turn: %+v", conv.Transcript[1])
	}
	if conv.Transcript[2].Text != "third" {
		t.Fatalf("unexpected last turn: %+v", conv.Transcript[2])
	}
}

func TestLastUserText(t *testing.T) {
	t.Parallel()

	conv := New("original question")
	conv.AppendAssistant("Intent: Plan")
	conv.AppendAssistant("Reasoning: asks about a plan")

	if got := conv.LastUserText(); got != "original question" {
		t.Fatalf("LastUserText() = %q", got)
	}

	conv.Append(RoleUser, "follow up")
	if got := conv.LastUserText(); got != "follow up" {
		t.Fatalf("LastUserText() = %q", got)
	}
}

func TestIntentIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	cases := []struct {
		intent Intent
		other  Intent
		want   bool
	}{
		{"Plan", IntentPlan, true},
		{"PLAN", IntentPlan, true},
		{"complaint", IntentComplaint, true},
		{"Complaint", IntentPlan, false},
		{"", IntentOther, false},
	}
	for _, tc := range cases {
		if got := tc.intent.Is(tc.other); got != tc.want {
			t.Errorf("Intent(%q).Is(%q) = %v, want %v", tc.intent, tc.other, got, tc.want)
		}
	}
}

func TestPlanSummaryHasCrossSell(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		want  bool
	}{
		{"Premium Plan with bundled streaming", true},
		{"", false},
		{"none", false},
		{"None", false},
		{"N/A", false},
		{"na", false},
		{"No recommendation", false},
		{"  ", false},
	}
	for _, tc := range cases {
		s := PlanSummary{CrossSellRecommendation: tc.value}
		if got := s.HasCrossSell(); got != tc.want {
			t.Errorf("HasCrossSell(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}
