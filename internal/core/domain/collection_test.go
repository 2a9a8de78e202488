package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/srgjo27/exhorizon/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs(prefix string) domain.IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func mustPlan(t *testing.T, id, name string) domain.ConcertPlan {
	t.Helper()
	p, err := domain.NewPlan(domain.PlanDraft{ConcertName: name, City: "Shanghai"}, id, time.UnixMilli(1700000000000), sequentialIDs(id))
	require.NoError(t, err)
	return p
}

func TestNewPlan_Defaults(t *testing.T) {
	draft := domain.PlanDraft{
		ConcertName: "Encore",
		City:        "Taipei",
		Tickets:     []domain.TicketItem{{Date: "2025-05-01", Price: 880}},
	}

	p, err := domain.NewPlan(draft, "plan-1", time.UnixMilli(1714521600000), sequentialIDs("item"))

	require.NoError(t, err)
	assert.Equal(t, "plan-1", p.ID)
	assert.Equal(t, domain.Millis(1714521600000), p.CreatedAt)
	assert.Equal(t, "item-1", p.Tickets[0].ID)
	assert.Equal(t, domain.BookingPending, p.Tickets[0].Status)
	assert.Equal(t, domain.BookingPending, p.FlightStatus)
	assert.Equal(t, domain.BookingPending, p.HotelStatus)
	assert.NotNil(t, p.DepartureFlights)
	assert.NotNil(t, p.ReturnFlights)
	assert.NotNil(t, p.Hotels)
}

func TestNewPlan_RequiresNameAndCity(t *testing.T) {
	_, err := domain.NewPlan(domain.PlanDraft{ConcertName: "  ", City: "Osaka"}, "x", time.Now(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPlan)

	_, err = domain.NewPlan(domain.PlanDraft{ConcertName: "Live", City: ""}, "x", time.Now(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPlan)
}

func TestCollection_AddPrepends(t *testing.T) {
	var c domain.Collection

	c, cmd := c.Add(mustPlan(t, "a", "First"))
	require.NotNil(t, cmd)
	c, cmd = c.Add(mustPlan(t, "b", "Second"))
	require.NotNil(t, cmd)

	require.Len(t, c, 2)
	assert.Equal(t, "b", c[0].ID)
	assert.Equal(t, "a", c[1].ID)
	assert.Equal(t, []domain.ConcertPlan(c), cmd.Snapshot)
}

func TestCollection_UpdatePreservesIdentity(t *testing.T) {
	c, _ := domain.Collection{}.Add(mustPlan(t, "a", "Before"))
	before := c[0]

	name := "After"
	tickets := []domain.TicketItem{{Price: 99}}
	next, updated, cmd, err := c.Update("a", domain.PlanPatch{ConcertName: &name, Tickets: &tickets}, sequentialIDs("n"))

	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, cmd)
	assert.Equal(t, before.ID, updated.ID)
	assert.Equal(t, before.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "After", updated.ConcertName)
	assert.Equal(t, before.City, updated.City)
	assert.Equal(t, "n-1", updated.Tickets[0].ID)
	assert.Equal(t, "Before", c[0].ConcertName, "receiver must not change")
	assert.Equal(t, "After", next[0].ConcertName)
}

func TestCollection_UpdateUnknownIsNoop(t *testing.T) {
	c, _ := domain.Collection{}.Add(mustPlan(t, "a", "Only"))

	name := "Other"
	next, updated, cmd, err := c.Update("missing", domain.PlanPatch{ConcertName: &name}, nil)

	assert.NoError(t, err)
	assert.Nil(t, updated)
	assert.Nil(t, cmd)
	assert.Equal(t, c, next)
}

func TestCollection_UpdateRejectsBlankName(t *testing.T) {
	c, _ := domain.Collection{}.Add(mustPlan(t, "a", "Only"))

	blank := ""
	next, updated, cmd, err := c.Update("a", domain.PlanPatch{ConcertName: &blank}, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidPlan)
	assert.Nil(t, updated)
	assert.Nil(t, cmd)
	assert.Equal(t, "Only", next[0].ConcertName)
}

func TestCollection_DeleteIsIdempotent(t *testing.T) {
	c, _ := domain.Collection{}.Add(mustPlan(t, "a", "One"))
	c, _ = c.Add(mustPlan(t, "b", "Two"))

	next, cmd := c.Delete("missing")
	assert.Nil(t, cmd)
	assert.Equal(t, c, next)

	next, cmd = c.Delete("a")
	require.NotNil(t, cmd)
	require.Len(t, next, 1)
	assert.Equal(t, "b", next[0].ID)
	assert.Len(t, c, 2)
}

func TestCollection_PrependKeepsImportOrder(t *testing.T) {
	c, _ := domain.Collection{}.Add(mustPlan(t, "old", "Existing"))

	next, cmd := c.Prepend([]domain.ConcertPlan{mustPlan(t, "x", "X"), mustPlan(t, "y", "Y")})
	require.NotNil(t, cmd)

	ids := []string{next[0].ID, next[1].ID, next[2].ID}
	assert.Equal(t, []string{"x", "y", "old"}, ids)

	same, cmd := next.Prepend(nil)
	assert.Nil(t, cmd)
	assert.Equal(t, next, same)
}

func TestCollection_DeleteRemovesDuplicates(t *testing.T) {
	dup := mustPlan(t, "dup", "Twice")
	c, _ := domain.Collection{}.Add(mustPlan(t, "keep", "Keep"))
	c, _ = c.Prepend([]domain.ConcertPlan{dup, dup})
	require.Len(t, c, 3)

	next, cmd := c.Delete("dup")

	require.NotNil(t, cmd)
	require.Len(t, next, 1)
	assert.Equal(t, "keep", next[0].ID)
	assert.Len(t, cmd.Snapshot, 1)
}

func TestCollection_UpdatePatchesDuplicates(t *testing.T) {
	dup := mustPlan(t, "dup", "Twice")
	c, _ := domain.Collection{}.Prepend([]domain.ConcertPlan{dup, dup})

	city := "Osaka"
	next, updated, cmd, err := c.Update("dup", domain.PlanPatch{City: &city}, nil)

	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, cmd)
	assert.Equal(t, "Osaka", updated.City)
	assert.Equal(t, "Osaka", next[0].City)
	assert.Equal(t, "Osaka", next[1].City)
	assert.Equal(t, "Shanghai", c[1].City)
}

func TestNewPlan_RejectsInvalidItems(t *testing.T) {
	tests := []struct {
		name  string
		draft domain.PlanDraft
	}{
		{"negative price", domain.PlanDraft{ConcertName: "A", City: "B", Tickets: []domain.TicketItem{{Price: -5}}}},
		{"unknown status", domain.PlanDraft{ConcertName: "A", City: "B", Hotels: []domain.HotelItem{{Status: "Done"}}}},
		{"unknown legacy status", domain.PlanDraft{ConcertName: "A", City: "B", FlightStatus: "Cancelled"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.NewPlan(tc.draft, "p", time.Now(), sequentialIDs("i"))
			assert.ErrorIs(t, err, domain.ErrInvalidPlan)
		})
	}
}

func TestCollection_UpdateRejectsInvalidItems(t *testing.T) {
	c, _ := domain.Collection{}.Add(mustPlan(t, "a", "Only"))

	tickets := []domain.TicketItem{{Price: 100, Status: "Done"}}
	next, updated, cmd, err := c.Update("a", domain.PlanPatch{Tickets: &tickets}, sequentialIDs("n"))

	assert.ErrorIs(t, err, domain.ErrInvalidPlan)
	assert.Nil(t, updated)
	assert.Nil(t, cmd)
	assert.Empty(t, next[0].Tickets)
}

func TestNormalize_ReportsGeneratedIDs(t *testing.T) {
	p := domain.ConcertPlan{ID: "p", ConcertName: "A", City: "B", Tickets: []domain.TicketItem{{ID: "t1"}}}
	assert.False(t, p.Normalize(sequentialIDs("n")))

	p.Hotels = []domain.HotelItem{{}}
	assert.False(t, p.Normalize(nil))
	assert.Empty(t, p.Hotels[0].ID)

	assert.True(t, p.Normalize(sequentialIDs("n")))
	assert.Equal(t, "n-1", p.Hotels[0].ID)
}
