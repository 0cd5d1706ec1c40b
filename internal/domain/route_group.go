package domain

import "time"

const (
	DateKeyLayout     = "2006-01-02"
	DisplayDateLayout = "Monday, January 2, 2006"
)

// RouteGroup is a view of rides sharing origin, destination and UTC departure day.
type RouteGroup struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	DateKey     string  `json:"date_key"`
	DisplayDate string  `json:"display_date"`
	Rides       []*Ride `json:"rides"`
}

type routeKey struct {
	from, to, date string
}

// GroupRidesByRouteAndDate partitions rides by (from, to, UTC date).
// Groups come out in first-seen order and rides keep their input order.
// Origins and destinations are compared case-sensitively.
func GroupRidesByRouteAndDate(rides []*Ride) []RouteGroup {
	groups := make([]RouteGroup, 0)
	index := make(map[routeKey]int)

	for _, r := range rides {
		dep := r.DepartureTime.UTC()
		key := routeKey{from: r.From, to: r.To, date: dep.Format(DateKeyLayout)}

		i, ok := index[key]
		if !ok {
			day := time.Date(dep.Year(), dep.Month(), dep.Day(), 0, 0, 0, 0, time.UTC)
			i = len(groups)
			index[key] = i
			groups = append(groups, RouteGroup{
				From:        r.From,
				To:          r.To,
				DateKey:     key.date,
				DisplayDate: day.Format(DisplayDateLayout),
			})
		}
		groups[i].Rides = append(groups[i].Rides, r)
	}

	return groups
}
