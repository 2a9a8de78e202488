package domain

// Preview is a read-only look at a tabular file. It never becomes plans.
type Preview struct {
	Sheet   string
	Headers []string
	Rows    [][]string
}

type ImportResult struct {
	Plans   []ConcertPlan
	Preview *Preview
	Notice  string
}
