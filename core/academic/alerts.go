package academic

import "sort"

// severityRank fixes the alert display order: critical first, low last.
var severityRank = map[AlertSeverity]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityMedium:   2,
	SeverityLow:      3,
}

// SeverityRank returns the sort rank of a severity (critical=0 ... low=3).
func SeverityRank(s AlertSeverity) int {
	return severityRank[s]
}

// DefaultAlertLimit is how many alerts the dashboard card shows.
const DefaultAlertLimit = 5

// RankRiskAlerts returns the unresolved alerts of the given period ordered by
// severity (critical < high < medium < low), truncated to limit (limit <= 0
// disables truncation). Alerts of equal severity keep their original relative
// order.
func RankRiskAlerts(alerts []StudentRiskAlert, periodID string, limit int) []StudentRiskAlert {
	active := make([]StudentRiskAlert, 0, len(alerts))
	for _, a := range alerts {
		if a.PeriodID == periodID && !a.Resolved {
			active = append(active, a)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return severityRank[active[i].Severity] < severityRank[active[j].Severity]
	})
	if limit > 0 && len(active) > limit {
		active = active[:limit]
	}
	return active
}

// CountActiveAlerts counts the unresolved alerts of the given period.
func CountActiveAlerts(alerts []StudentRiskAlert, periodID *string) int {
	var n int
	for _, a := range FilterByPeriod(alerts, periodID) {
		if !a.Resolved {
			n++
		}
	}
	return n
}
