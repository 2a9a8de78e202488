package domain

import (
	"sort"
	"strings"
)

type SortField string

const (
	SortByConcertName SortField = "concertName"
	SortByCity        SortField = "city"
	SortByCreatedAt   SortField = "createdAt"
	SortByTotalCost   SortField = "totalCost"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// PlanQuery filters and orders plans for display. It never touches the store.
type PlanQuery struct {
	Search string
	Field  SortField
	Order  SortOrder
}

func DefaultQuery() PlanQuery {
	return PlanQuery{Field: SortByCreatedAt, Order: SortDesc}
}

func ParseSortField(s string) (SortField, bool) {
	switch f := SortField(s); f {
	case SortByConcertName, SortByCity, SortByCreatedAt, SortByTotalCost:
		return f, true
	}
	return "", false
}

func ParseSortOrder(s string) (SortOrder, bool) {
	switch o := SortOrder(strings.ToLower(s)); o {
	case SortAsc, SortDesc:
		return o, true
	}
	return "", false
}

func (q PlanQuery) Matches(p ConcertPlan) bool {
	term := strings.ToLower(q.Search)
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.ConcertName), term) ||
		strings.Contains(strings.ToLower(p.City), term)
}

func (q PlanQuery) Apply(plans []ConcertPlan) []ConcertPlan {
	out := make([]ConcertPlan, 0, len(plans))
	for _, p := range plans {
		if q.Matches(p) {
			out = append(out, p.Clone())
		}
	}

	field := q.Field
	if field == "" {
		field = SortByCreatedAt
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j], field)
		if q.Order == SortAsc {
			return c < 0
		}
		return c > 0
	})

	return out
}

func compare(a, b ConcertPlan, field SortField) int {
	switch field {
	case SortByConcertName:
		return strings.Compare(a.ConcertName, b.ConcertName)
	case SortByCity:
		return strings.Compare(a.City, b.City)
	case SortByTotalCost:
		return cmpFloat(CalculateTotals(a).Grand, CalculateTotals(b).Grand)
	default:
		return cmpFloat(float64(a.CreatedAt), float64(b.CreatedAt))
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
