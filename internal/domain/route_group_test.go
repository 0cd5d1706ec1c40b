package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return ts
}

func TestGroupRidesByRouteAndDate_Scenario(t *testing.T) {
	rides := []*Ride{
		{ID: "1", From: "Kigali", To: "Huye", DepartureTime: mustTime(t, "2024-05-01T08:00:00Z")},
		{ID: "2", From: "Kigali", To: "Huye", DepartureTime: mustTime(t, "2024-05-01T18:00:00Z")},
		{ID: "3", From: "Huye", To: "Kigali", DepartureTime: mustTime(t, "2024-05-01T09:00:00Z")},
	}

	groups := GroupRidesByRouteAndDate(rides)

	require.Len(t, groups, 2)

	assert.Equal(t, "Kigali", groups[0].From)
	assert.Equal(t, "Huye", groups[0].To)
	assert.Equal(t, "2024-05-01", groups[0].DateKey)
	assert.Equal(t, "Wednesday, May 1, 2024", groups[0].DisplayDate)
	require.Len(t, groups[0].Rides, 2)
	assert.Equal(t, "1", groups[0].Rides[0].ID)
	assert.Equal(t, "2", groups[0].Rides[1].ID)

	assert.Equal(t, "Huye", groups[1].From)
	require.Len(t, groups[1].Rides, 1)
	assert.Equal(t, "3", groups[1].Rides[0].ID)
}

func TestGroupRidesByRouteAndDate_Empty(t *testing.T) {
	groups := GroupRidesByRouteAndDate(nil)

	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestGroupRidesByRouteAndDate_FirstSeenOrder(t *testing.T) {
	rides := []*Ride{
		{ID: "a", From: "Musanze", To: "Kigali", DepartureTime: mustTime(t, "2024-05-03T08:00:00Z")},
		{ID: "b", From: "Kigali", To: "Huye", DepartureTime: mustTime(t, "2024-05-01T08:00:00Z")},
		{ID: "c", From: "Musanze", To: "Kigali", DepartureTime: mustTime(t, "2024-05-03T20:00:00Z")},
		{ID: "d", From: "Kigali", To: "Huye", DepartureTime: mustTime(t, "2024-05-02T08:00:00Z")},
	}

	groups := GroupRidesByRouteAndDate(rides)

	require.Len(t, groups, 3)
	assert.Equal(t, "2024-05-03", groups[0].DateKey)
	assert.Equal(t, []*Ride{rides[0], rides[2]}, groups[0].Rides)
	assert.Equal(t, "2024-05-01", groups[1].DateKey)
	assert.Equal(t, "2024-05-02", groups[2].DateKey)
}

func TestGroupRidesByRouteAndDate_CaseSensitive(t *testing.T) {
	dep := mustTime(t, "2024-05-01T08:00:00Z")
	rides := []*Ride{
		{ID: "1", From: "Kigali", To: "Huye", DepartureTime: dep},
		{ID: "2", From: "kigali", To: "Huye", DepartureTime: dep},
	}

	groups := GroupRidesByRouteAndDate(rides)

	assert.Len(t, groups, 2)
}

func TestGroupRidesByRouteAndDate_UsesUTCDate(t *testing.T) {
	kigali := time.FixedZone("CAT", 2*60*60)
	rides := []*Ride{
		// 01:00 local on May 2nd is still May 1st in UTC
		{ID: "1", From: "Kigali", To: "Huye", DepartureTime: time.Date(2024, 5, 2, 1, 0, 0, 0, kigali)},
		{ID: "2", From: "Kigali", To: "Huye", DepartureTime: mustTime(t, "2024-05-01T10:00:00Z")},
	}

	groups := GroupRidesByRouteAndDate(rides)

	require.Len(t, groups, 1)
	assert.Equal(t, "2024-05-01", groups[0].DateKey)
	assert.Len(t, groups[0].Rides, 2)
}

func TestGroupRidesByRouteAndDate_Properties(t *testing.T) {
	base := mustTime(t, "2024-05-01T00:00:00Z")
	routes := [][2]string{{"Kigali", "Huye"}, {"Huye", "Kigali"}, {"Kigali", "Rubavu"}}

	var rides []*Ride
	for i := 0; i < 40; i++ {
		route := routes[i%len(routes)]
		rides = append(rides, &Ride{
			ID:            string(rune('A' + i)),
			From:          route[0],
			To:            route[1],
			DepartureTime: base.Add(time.Duration(i*7) * time.Hour),
		})
	}

	groups := GroupRidesByRouteAndDate(rides)
	again := GroupRidesByRouteAndDate(rides)

	total := 0
	keys := make(map[string]struct{})
	for _, g := range groups {
		total += len(g.Rides)
		key := g.From + "|" + g.To + "|" + g.DateKey
		_, dup := keys[key]
		assert.False(t, dup, "duplicate group key %s", key)
		keys[key] = struct{}{}

		for _, r := range g.Rides {
			assert.Equal(t, g.From, r.From)
			assert.Equal(t, g.To, r.To)
			assert.Equal(t, g.DateKey, r.DepartureTime.UTC().Format(DateKeyLayout))
		}
	}
	assert.Equal(t, len(rides), total)
	assert.Equal(t, groups, again)
}
