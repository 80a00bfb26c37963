package academic

import (
	"math"
	"sort"
)

// ReasonStat is one bucket of the withdrawal-cause analysis. Every scoped
// withdrawal lands in exactly one bucket; Percent values sum to ~100 (integer
// rounding) whenever the scoped set is non-empty.
type ReasonStat struct {
	Reason  WithdrawalReason `json:"reason"`
	Label   string           `json:"label"`
	Count   int              `json:"count"`
	Percent int              `json:"percent"`
}

// WithdrawalReasonStats groups the scoped withdrawals by reason, ordered by
// count descending (ties keep first-occurrence order). Percent is
// round(count/total*100), 0 when the scoped set is empty.
func WithdrawalReasonStats(withdrawals []Withdrawal, selectedPeriodID *string) []ReasonStat {
	scoped := FilterByPeriod(withdrawals, selectedPeriodID)
	counts := make(map[WithdrawalReason]int)
	order := make([]WithdrawalReason, 0)
	for _, w := range scoped {
		if _, seen := counts[w.Reason]; !seen {
			order = append(order, w.Reason)
		}
		counts[w.Reason]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	total := len(scoped)
	stats := make([]ReasonStat, 0, len(order))
	for _, reason := range order {
		count := counts[reason]
		var percent int
		if total > 0 {
			percent = int(math.Round(float64(count) / float64(total) * 100))
		}
		stats = append(stats, ReasonStat{
			Reason:  reason,
			Label:   reason.Label(),
			Count:   count,
			Percent: percent,
		})
	}
	return stats
}

// WithdrawalBreakdown tallies the scoped withdrawals by type, plus the
// high-risk count. All tallies are computed in a single pass.
type WithdrawalBreakdown struct {
	Temporary int `json:"temporary"`
	Permanent int `json:"permanent"`
	Transfer  int `json:"transfer"`
	Academic  int `json:"academic"`
	HighRisk  int `json:"highRisk"`
	Total     int `json:"total"`
}

func SummarizeWithdrawals(withdrawals []Withdrawal, selectedPeriodID *string) WithdrawalBreakdown {
	var b WithdrawalBreakdown
	for _, w := range FilterByPeriod(withdrawals, selectedPeriodID) {
		switch w.Type {
		case WithdrawalTemporary:
			b.Temporary++
		case WithdrawalPermanent:
			b.Permanent++
		case WithdrawalTransfer:
			b.Transfer++
		case WithdrawalAcademic:
			b.Academic++
		}
		if w.RiskLevel == RiskHigh {
			b.HighRisk++
		}
		b.Total++
	}
	return b
}

// CareerWithdrawals counts withdrawals per career code.
type CareerWithdrawals struct {
	CareerCode string `json:"careerCode"`
	Count      int    `json:"count"`
}

// WithdrawalsByCareer joins each scoped withdrawal to its student's career
// and counts per career code, ordered by count descending (ties keep
// first-occurrence order). Withdrawals whose student or career cannot be
// resolved are skipped.
func WithdrawalsByCareer(withdrawals []Withdrawal, students []Student, careers []Career, selectedPeriodID *string) []CareerWithdrawals {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, w := range FilterByPeriod(withdrawals, selectedPeriodID) {
		var student Student
		var found bool
		for _, s := range students {
			if s.ID == w.StudentID {
				student, found = s, true
				break
			}
		}
		if !found {
			continue
		}
		var code string
		for _, c := range careers {
			if c.ID == student.CareerID {
				code = c.Code
				break
			}
		}
		if code == "" {
			continue
		}
		if _, seen := counts[code]; !seen {
			order = append(order, code)
		}
		counts[code]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	stats := make([]CareerWithdrawals, 0, len(order))
	for _, code := range order {
		stats = append(stats, CareerWithdrawals{CareerCode: code, Count: counts[code]})
	}
	return stats
}

// DefaultRecentWithdrawals is how many rows the "latest withdrawals" card shows.
const DefaultRecentWithdrawals = 5

// RecentWithdrawals returns the first `limit` scoped withdrawals in store
// order (the dashboard's "latest records" card).
func RecentWithdrawals(withdrawals []Withdrawal, selectedPeriodID *string, limit int) []Withdrawal {
	scoped := FilterByPeriod(withdrawals, selectedPeriodID)
	if limit > 0 && len(scoped) > limit {
		scoped = scoped[:limit]
	}
	out := make([]Withdrawal, len(scoped))
	copy(out, scoped)
	return out
}
