package entity

// SummaryPeriod is the bucket size used when grouping expenses over time.
type SummaryPeriod string

const (
	SummaryPeriodDay   SummaryPeriod = "day"
	SummaryPeriodWeek  SummaryPeriod = "week"
	SummaryPeriodMonth SummaryPeriod = "month"
	SummaryPeriodYear  SummaryPeriod = "year"
)

// ParseSummaryPeriod maps a query value to a period, falling back to month.
func ParseSummaryPeriod(value string) SummaryPeriod {
	switch SummaryPeriod(value) {
	case SummaryPeriodDay, SummaryPeriodWeek, SummaryPeriodYear:
		return SummaryPeriod(value)
	}
	return SummaryPeriodMonth
}
