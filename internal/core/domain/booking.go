package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type BookingStatus string

const (
	BookingPending BookingStatus = "Pending"
	BookingBooked  BookingStatus = "Booked"
)

// Price is a non-negative amount. Absent, null or non-numeric JSON values decode as 0.
type Price float64

func (p Price) Value() float64 {
	f := float64(p)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func (p Price) String() string {
	return strconv.FormatFloat(p.Value(), 'f', -1, 64)
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			*p = 0
			return nil
		}
		raw = []byte(strings.TrimSpace(s))
	}

	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*p = 0
		return nil
	}

	*p = Price(f)
	return nil
}

type TicketItem struct {
	ID     string        `json:"id"`
	Date   string        `json:"date"`
	Seat   string        `json:"seat"`
	Price  Price         `json:"price" validate:"gte=0"`
	Status BookingStatus `json:"status" validate:"oneof=Pending Booked"`
}

type FlightSegment struct {
	ID         string        `json:"id"`
	FlightNo   string        `json:"flightNo"`
	DepAirport string        `json:"depAirport"`
	ArrAirport string        `json:"arrAirport"`
	DepTime    string        `json:"depTime"`
	ArrTime    string        `json:"arrTime"`
	Price      Price         `json:"price" validate:"gte=0"`
	Status     BookingStatus `json:"status" validate:"oneof=Pending Booked"`
}

type HotelItem struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	CheckIn  string        `json:"checkIn"`
	CheckOut string        `json:"checkOut"`
	Price    Price         `json:"price" validate:"gte=0"`
	Status   BookingStatus `json:"status" validate:"oneof=Pending Booked"`
}

func (t TicketItem) Cost() float64    { return t.Price.Value() }
func (f FlightSegment) Cost() float64 { return f.Price.Value() }
func (h HotelItem) Cost() float64     { return h.Price.Value() }

func (t TicketItem) IsBooked() bool    { return t.Status == BookingBooked }
func (f FlightSegment) IsBooked() bool { return f.Status == BookingBooked }
func (h HotelItem) IsBooked() bool     { return h.Status == BookingBooked }
