package portability

import (
	"fmt"
	"strings"

	"github.com/srgjo27/exhorizon/internal/core/domain"
)

func ticketLine(t domain.TicketItem) string {
	return fmt.Sprintf("%s %s (¥%s) - [%s]", t.Date, t.Seat, t.Price, t.Status)
}

func segmentLine(f domain.FlightSegment) string {
	return fmt.Sprintf("%s: %s->%s (¥%s) - [%s]", f.FlightNo, f.DepAirport, f.ArrAirport, f.Price, f.Status)
}

func hotelLine(h domain.HotelItem) string {
	return fmt.Sprintf("%s (%s~%s) ¥%s - [%s]", h.Name, h.CheckIn, h.CheckOut, h.Price, h.Status)
}

func joinLines[T any](items []T, line func(T) string) string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = line(item)
	}
	return strings.Join(out, "\n")
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
