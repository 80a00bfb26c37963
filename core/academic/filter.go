package academic

// PeriodScoped is implemented by every record type carrying a periodId.
type PeriodScoped interface {
	Period() string
}

// FilterByPeriod returns the records whose periodId equals *selectedPeriodID,
// or the collection unchanged (same slice, order preserved) when
// selectedPeriodID is nil. A period with no matching records yields an empty
// slice, not an error.
func FilterByPeriod[T PeriodScoped](records []T, selectedPeriodID *string) []T {
	if selectedPeriodID == nil {
		return records
	}
	filtered := make([]T, 0, len(records))
	for _, r := range records {
		if r.Period() == *selectedPeriodID {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
