package domain

type Category string

const (
	CategoryTickets   Category = "tickets"
	CategoryTransport Category = "transport"
	CategoryHotels    Category = "hotels"
)

type Totals struct {
	Ticket    float64 `json:"ticketTotal"`
	Transport float64 `json:"transportTotal"`
	Hotel     float64 `json:"hotelTotal"`
	Grand     float64 `json:"grandTotal"`
}

type Completion struct {
	Tickets   bool `json:"tickets"`
	Transport bool `json:"transport"`
	Hotels    bool `json:"hotels"`
}

type PlanSummary struct {
	Totals         Totals     `json:"totals"`
	Completion     Completion `json:"completion"`
	TicketCount    int        `json:"ticketCount"`
	DepartureCount int        `json:"departureCount"`
	ReturnCount    int        `json:"returnCount"`
	HotelCount     int        `json:"hotelCount"`
}

type lineItem interface {
	Cost() float64
	IsBooked() bool
}

func sumCost[T lineItem](items []T) float64 {
	var total float64
	for _, item := range items {
		total += item.Cost()
	}
	return total
}

// allBooked is false for an empty list.
func allBooked[T lineItem](items []T) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if !item.IsBooked() {
			return false
		}
	}
	return true
}

func CalculateTotals(p ConcertPlan) Totals {
	t := Totals{
		Ticket:    sumCost(p.Tickets),
		Transport: sumCost(p.DepartureFlights) + sumCost(p.ReturnFlights),
		Hotel:     sumCost(p.Hotels),
	}
	t.Grand = t.Ticket + t.Transport + t.Hotel
	return t
}

func IsCategoryComplete(p ConcertPlan, c Category) bool {
	switch c {
	case CategoryTickets:
		return allBooked(p.Tickets)
	case CategoryTransport:
		return allBooked(p.Segments())
	case CategoryHotels:
		return allBooked(p.Hotels)
	default:
		return false
	}
}

func CalculateCompletion(p ConcertPlan) Completion {
	return Completion{
		Tickets:   IsCategoryComplete(p, CategoryTickets),
		Transport: IsCategoryComplete(p, CategoryTransport),
		Hotels:    IsCategoryComplete(p, CategoryHotels),
	}
}

func Summarize(p ConcertPlan) PlanSummary {
	return PlanSummary{
		Totals:         CalculateTotals(p),
		Completion:     CalculateCompletion(p),
		TicketCount:    len(p.Tickets),
		DepartureCount: len(p.DepartureFlights),
		ReturnCount:    len(p.ReturnFlights),
		HotelCount:     len(p.Hotels),
	}
}
