package academic

import "testing"

func TestWithdrawalReasonStats(t *testing.T) {
	withdrawals := []Withdrawal{
		{PeriodID: "p1", Reason: ReasonEconomic},
		{PeriodID: "p1", Reason: ReasonHealth},
		{PeriodID: "p1", Reason: ReasonEconomic},
		{PeriodID: "p2", Reason: ReasonWork}, // other period
	}

	got := WithdrawalReasonStats(withdrawals, strPtr("p1"))
	if len(got) != 2 {
		t.Fatalf("WithdrawalReasonStats() returned %d buckets, want 2", len(got))
	}
	if got[0].Reason != ReasonEconomic || got[0].Count != 2 || got[0].Percent != 67 {
		t.Errorf("WithdrawalReasonStats()[0] = %+v", got[0])
	}
	if got[0].Label != "Problemas económicos" {
		t.Errorf("WithdrawalReasonStats()[0].Label = %q", got[0].Label)
	}
	if got[1].Reason != ReasonHealth || got[1].Count != 1 || got[1].Percent != 33 {
		t.Errorf("WithdrawalReasonStats()[1] = %+v", got[1])
	}
}

func TestWithdrawalReasonStatsEmpty(t *testing.T) {
	if got := WithdrawalReasonStats(nil, nil); len(got) != 0 {
		t.Errorf("WithdrawalReasonStats(nil) = %v, want empty", got)
	}
}

func TestSummarizeWithdrawals(t *testing.T) {
	withdrawals := []Withdrawal{
		{PeriodID: "p1", Type: WithdrawalTemporary, RiskLevel: RiskHigh},
		{PeriodID: "p1", Type: WithdrawalTemporary, RiskLevel: RiskLow},
		{PeriodID: "p1", Type: WithdrawalPermanent, RiskLevel: RiskHigh},
		{PeriodID: "p1", Type: WithdrawalTransfer, RiskLevel: RiskMedium},
		{PeriodID: "p1", Type: WithdrawalAcademic, RiskLevel: RiskLow},
		{PeriodID: "p2", Type: WithdrawalPermanent, RiskLevel: RiskHigh},
	}

	got := SummarizeWithdrawals(withdrawals, strPtr("p1"))
	want := WithdrawalBreakdown{Temporary: 2, Permanent: 1, Transfer: 1, Academic: 1, HighRisk: 2, Total: 5}
	if got != want {
		t.Errorf("SummarizeWithdrawals() = %+v, want %+v", got, want)
	}
}

func TestWithdrawalsByCareer(t *testing.T) {
	students := []Student{
		{ID: "s1", CareerID: "c1"},
		{ID: "s2", CareerID: "c1"},
		{ID: "s3", CareerID: "c2"},
		{ID: "s4", CareerID: "c9"}, // career unresolved
	}
	careers := []Career{
		{ID: "c1", Code: "ING-SIS"},
		{ID: "c2", Code: "MED"},
	}
	withdrawals := []Withdrawal{
		{StudentID: "s3", PeriodID: "p1"},
		{StudentID: "s1", PeriodID: "p1"},
		{StudentID: "s2", PeriodID: "p1"},
		{StudentID: "s4", PeriodID: "p1"},    // skipped: no career
		{StudentID: "ghost", PeriodID: "p1"}, // skipped: no student
	}

	got := WithdrawalsByCareer(withdrawals, students, careers, strPtr("p1"))
	if len(got) != 2 {
		t.Fatalf("WithdrawalsByCareer() returned %d rows, want 2", len(got))
	}
	if got[0].CareerCode != "ING-SIS" || got[0].Count != 2 {
		t.Errorf("WithdrawalsByCareer()[0] = %+v", got[0])
	}
	if got[1].CareerCode != "MED" || got[1].Count != 1 {
		t.Errorf("WithdrawalsByCareer()[1] = %+v", got[1])
	}
}

func TestRecentWithdrawals(t *testing.T) {
	withdrawals := []Withdrawal{
		{ID: "w1", PeriodID: "p1"},
		{ID: "w2", PeriodID: "p2"},
		{ID: "w3", PeriodID: "p1"},
		{ID: "w4", PeriodID: "p1"},
	}
	got := RecentWithdrawals(withdrawals, strPtr("p1"), 2)
	if len(got) != 2 || got[0].ID != "w1" || got[1].ID != "w3" {
		t.Errorf("RecentWithdrawals() = %v", got)
	}
}
