package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Millis is a Unix timestamp in milliseconds, the createdAt wire format.
type Millis int64

func MillisFrom(t time.Time) Millis {
	return Millis(t.UnixMilli())
}

func (m Millis) Time() time.Time {
	return time.UnixMilli(int64(m))
}

func (m *Millis) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*m = 0
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid timestamp %s", s)
	}

	*m = Millis(int64(f))
	return nil
}

type ConcertPlan struct {
	ID               string          `json:"id"`
	ConcertName      string          `json:"concertName" validate:"required"`
	City             string          `json:"city" validate:"required"`
	Tickets          []TicketItem    `json:"tickets" validate:"dive"`
	DepartureFlights []FlightSegment `json:"departureFlights" validate:"dive"`
	ReturnFlights    []FlightSegment `json:"returnFlights" validate:"dive"`
	Hotels           []HotelItem     `json:"hotels" validate:"dive"`

	// Legacy rollups kept for file compatibility; completion is derived from items.
	FlightStatus BookingStatus `json:"flightStatus" validate:"oneof=Pending Booked"`
	HotelStatus  BookingStatus `json:"hotelStatus" validate:"oneof=Pending Booked"`

	Remarks   string `json:"remarks"`
	CreatedAt Millis `json:"createdAt"`
}

// PlanDraft is a plan before it has been given an id and a creation time.
type PlanDraft struct {
	ConcertName      string          `json:"concertName"`
	City             string          `json:"city"`
	Tickets          []TicketItem    `json:"tickets"`
	DepartureFlights []FlightSegment `json:"departureFlights"`
	ReturnFlights    []FlightSegment `json:"returnFlights"`
	Hotels           []HotelItem     `json:"hotels"`
	FlightStatus     BookingStatus   `json:"flightStatus"`
	HotelStatus      BookingStatus   `json:"hotelStatus"`
	Remarks          string          `json:"remarks"`
}

// PlanPatch carries the fields of an update. Nil fields are left untouched and
// non-nil collections replace the stored ones wholesale.
type PlanPatch struct {
	ConcertName      *string          `json:"concertName,omitempty"`
	City             *string          `json:"city,omitempty"`
	Tickets          *[]TicketItem    `json:"tickets,omitempty"`
	DepartureFlights *[]FlightSegment `json:"departureFlights,omitempty"`
	ReturnFlights    *[]FlightSegment `json:"returnFlights,omitempty"`
	Hotels           *[]HotelItem     `json:"hotels,omitempty"`
	FlightStatus     *BookingStatus   `json:"flightStatus,omitempty"`
	HotelStatus      *BookingStatus   `json:"hotelStatus,omitempty"`
	Remarks          *string          `json:"remarks,omitempty"`
}

// IDFunc produces identifiers for plans and their nested items.
type IDFunc func() string

// NewPlan stamps a draft with its id and creation time. The result passes
// Validate or an ErrInvalidPlan is returned.
func NewPlan(draft PlanDraft, id string, createdAt time.Time, newID IDFunc) (ConcertPlan, error) {
	plan := ConcertPlan{
		ID:               id,
		ConcertName:      draft.ConcertName,
		City:             draft.City,
		Tickets:          draft.Tickets,
		DepartureFlights: draft.DepartureFlights,
		ReturnFlights:    draft.ReturnFlights,
		Hotels:           draft.Hotels,
		FlightStatus:     draft.FlightStatus,
		HotelStatus:      draft.HotelStatus,
		Remarks:          draft.Remarks,
		CreatedAt:        MillisFrom(createdAt),
	}
	plan.Normalize(newID)

	if err := plan.Validate(); err != nil {
		return ConcertPlan{}, err
	}

	return plan.Clone(), nil
}

// Apply merges the patch into a copy of the plan. ID and CreatedAt never change
// and a patch that leaves the plan invalid is rejected.
func (p ConcertPlan) Apply(patch PlanPatch, newID IDFunc) (ConcertPlan, error) {
	out := p.Clone()

	if patch.ConcertName != nil {
		out.ConcertName = *patch.ConcertName
	}
	if patch.City != nil {
		out.City = *patch.City
	}
	if patch.Tickets != nil {
		out.Tickets = append([]TicketItem{}, (*patch.Tickets)...)
	}
	if patch.DepartureFlights != nil {
		out.DepartureFlights = append([]FlightSegment{}, (*patch.DepartureFlights)...)
	}
	if patch.ReturnFlights != nil {
		out.ReturnFlights = append([]FlightSegment{}, (*patch.ReturnFlights)...)
	}
	if patch.Hotels != nil {
		out.Hotels = append([]HotelItem{}, (*patch.Hotels)...)
	}
	if patch.FlightStatus != nil {
		out.FlightStatus = *patch.FlightStatus
	}
	if patch.HotelStatus != nil {
		out.HotelStatus = *patch.HotelStatus
	}
	if patch.Remarks != nil {
		out.Remarks = *patch.Remarks
	}

	out.ID = p.ID
	out.CreatedAt = p.CreatedAt
	out.Normalize(newID)

	if err := out.Validate(); err != nil {
		return p, err
	}

	return out, nil
}

// Normalize replaces nil collections with empty ones, defaults empty statuses to
// Pending and gives nested items without an id a fresh one. newID may be nil to
// leave missing ids empty. It reports whether any id was generated.
func (p *ConcertPlan) Normalize(newID IDFunc) bool {
	if p.Tickets == nil {
		p.Tickets = []TicketItem{}
	}
	if p.DepartureFlights == nil {
		p.DepartureFlights = []FlightSegment{}
	}
	if p.ReturnFlights == nil {
		p.ReturnFlights = []FlightSegment{}
	}
	if p.Hotels == nil {
		p.Hotels = []HotelItem{}
	}

	p.FlightStatus = defaultStatus(p.FlightStatus)
	p.HotelStatus = defaultStatus(p.HotelStatus)

	filled := false
	for i := range p.Tickets {
		p.Tickets[i].Status = defaultStatus(p.Tickets[i].Status)
		filled = ensureID(&p.Tickets[i].ID, newID) || filled
	}
	for i := range p.DepartureFlights {
		p.DepartureFlights[i].Status = defaultStatus(p.DepartureFlights[i].Status)
		filled = ensureID(&p.DepartureFlights[i].ID, newID) || filled
	}
	for i := range p.ReturnFlights {
		p.ReturnFlights[i].Status = defaultStatus(p.ReturnFlights[i].Status)
		filled = ensureID(&p.ReturnFlights[i].ID, newID) || filled
	}
	for i := range p.Hotels {
		p.Hotels[i].Status = defaultStatus(p.Hotels[i].Status)
		filled = ensureID(&p.Hotels[i].ID, newID) || filled
	}

	return filled
}

func (p ConcertPlan) Clone() ConcertPlan {
	out := p
	out.Tickets = append([]TicketItem{}, p.Tickets...)
	out.DepartureFlights = append([]FlightSegment{}, p.DepartureFlights...)
	out.ReturnFlights = append([]FlightSegment{}, p.ReturnFlights...)
	out.Hotels = append([]HotelItem{}, p.Hotels...)
	return out
}

// Segments returns departure legs followed by return legs.
func (p ConcertPlan) Segments() []FlightSegment {
	out := make([]FlightSegment, 0, len(p.DepartureFlights)+len(p.ReturnFlights))
	out = append(out, p.DepartureFlights...)
	return append(out, p.ReturnFlights...)
}

func defaultStatus(s BookingStatus) BookingStatus {
	if s == "" {
		return BookingPending
	}
	return s
}

func ensureID(id *string, newID IDFunc) bool {
	if *id != "" || newID == nil {
		return false
	}
	*id = newID()
	return true
}

// MarshalIndent renders plans the way backups are written.
func MarshalIndent(plans []ConcertPlan) ([]byte, error) {
	if plans == nil {
		plans = []ConcertPlan{}
	}
	return json.MarshalIndent(plans, "", "  ")
}
