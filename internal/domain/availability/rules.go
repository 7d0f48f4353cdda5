package availability

import (
	"time"

	"bounce-booking/internal/pkg/civil"
)

type Status string

const (
	StatusPast      Status = "past"
	StatusBlocked   Status = "blocked"
	StatusBooked    Status = "booked"
	StatusAvailable Status = "available"
)

const (
	ReasonPast        = "This date is in the past"
	ReasonUnavailable = "This date is unavailable"
	ReasonBooked      = "This date is already booked"
	ReasonHeld        = "This date is currently being booked"
)

// Occupancy is a booking that may hold a date. Confirmed bookings always
// hold; pending ones only while younger than the hold window.
type Occupancy struct {
	Date      civil.Date
	AssetID   string
	Confirmed bool
	CreatedAt time.Time
}

func (o Occupancy) Holds(now time.Time, holdWindow time.Duration) bool {
	if o.Confirmed {
		return true
	}
	return now.Sub(o.CreatedAt) < holdWindow
}

type Day struct {
	Date   civil.Date
	Status Status
	Reason string
}

func (d Day) Available() bool {
	return d.Status == StatusAvailable
}

// Snapshot is everything needed to evaluate days for one asset. Blocked and
// Occupied may cover more than the evaluated range; entries for other assets
// are ignored.
type Snapshot struct {
	AssetID    string
	Today      civil.Date
	Now        time.Time
	HoldWindow time.Duration
	Blocked    []*BlockedDate
	Occupied   []Occupancy
}

// Evaluate applies past > blocked > booked > available; the first match wins.
func (s Snapshot) Evaluate(date civil.Date) Day {
	if date.Before(s.Today) {
		return Day{Date: date, Status: StatusPast, Reason: ReasonPast}
	}
	for _, b := range s.Blocked {
		if b.Date() == date && b.AppliesTo(s.AssetID) {
			return Day{Date: date, Status: StatusBlocked, Reason: b.DisplayReason()}
		}
	}
	for _, o := range s.Occupied {
		if o.Date == date && o.AssetID == s.AssetID && o.Holds(s.Now, s.HoldWindow) {
			return Day{Date: date, Status: StatusBooked, Reason: ReasonBooked}
		}
	}
	return Day{Date: date, Status: StatusAvailable}
}

func (s Snapshot) Month(year int, month time.Month) []Day {
	n := civil.DaysIn(year, month)
	days := make([]Day, 0, n)
	for d := 1; d <= n; d++ {
		days = append(days, s.Evaluate(civil.New(year, month, d)))
	}
	return days
}

// Fallback is used when the store cannot be read: past days are past, days
// on the static blackout list are blocked, everything else is shown as open.
type Fallback struct {
	Today     civil.Date
	Blackouts map[civil.Date]struct{}
}

func NewFallback(today civil.Date, blackouts []civil.Date) Fallback {
	set := make(map[civil.Date]struct{}, len(blackouts))
	for _, d := range blackouts {
		set[d] = struct{}{}
	}
	return Fallback{Today: today, Blackouts: set}
}

func (f Fallback) Evaluate(date civil.Date) Day {
	if date.Before(f.Today) {
		return Day{Date: date, Status: StatusPast, Reason: ReasonPast}
	}
	if _, ok := f.Blackouts[date]; ok {
		return Day{Date: date, Status: StatusBlocked, Reason: ReasonUnavailable}
	}
	return Day{Date: date, Status: StatusAvailable}
}

func (f Fallback) Month(year int, month time.Month) []Day {
	n := civil.DaysIn(year, month)
	days := make([]Day, 0, n)
	for d := 1; d <= n; d++ {
		days = append(days, f.Evaluate(civil.New(year, month, d)))
	}
	return days
}
