package customer

import (
	"testing"
)

func TestRowRecordMapping(t *testing.T) {
	t.Parallel()

	row := customerRow{
		CustomerID:         "CUST1001",
		Name:               "Asha Rao",
		Age:                34,
		Gender:             "female",
		Location:           "Bengaluru",
		PlanSubscribed:     "Unlimited Plan",
		Device:             "Pixel 8",
		PlanDetails:        "truly unlimited data, FUP after 50 GB",
		NetworkType:        "5G",
		JoinDate:           "2021-06-14",
		LastReportedIssue:  "slow internet",
		ResolutionProvided: "router restart resolved the issue",
	}

	rec := row.record()
	if rec.CustomerID != "CUST1001" || rec.Name != "Asha Rao" || rec.Age != 34 {
		t.Fatalf("identity fields not mapped: %+v", rec)
	}
	if rec.PlanSubscribed != "Unlimited Plan" || rec.NetworkType != "5G" {
		t.Fatalf("plan fields not mapped: %+v", rec)
	}
	if rec.LastReportedIssue != "slow internet" || rec.ResolutionProvided == "" {
		t.Fatalf("issue fields not mapped: %+v", rec)
	}
}

func TestNewPostgresStoreRequiresDSN(t *testing.T) {
	t.Parallel()

	if _, err := NewPostgresStore(Config{DSN: "   "}); err == nil {
		t.Fatal("expected error for empty dsn")
	}
}
