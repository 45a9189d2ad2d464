// Package admission holds the pure decision logic guarding booking
// creation: date-range validation, overlap detection against persisted
// ranges, reservation code generation and the per-car locks that
// serialize admission for a single car. Nothing in this package touches
// the database; the booking service wires it to persistence.
package admission

import (
	"errors"
	"time"
)

var (
	ErrInvalidRange       = errors.New("end date must be on or after start date")
	ErrPastDate           = errors.New("booking dates cannot be in the past")
	ErrOverlap            = errors.New("car is already booked for some of these dates")
	ErrCodeSpaceExhausted = errors.New("reservation code space exhausted")
)

// BookedRange is one persisted booking interval for a car, as read from
// storage. Both bounds are inclusive calendar days.
type BookedRange struct {
	BookingID string
	Start     time.Time
	End       time.Time
}

// Day truncates t to its calendar day in UTC. All range comparisons in
// this package operate on day precision.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateRange checks a proposed [start, end] interval against booking
// policy: the range must not be inverted and must not begin or end
// before today. Same-day bookings are allowed. The caller supplies
// today through a Clock so the decision stays deterministic.
func ValidateRange(start, end, today time.Time) error {
	start, end, today = Day(start), Day(end), Day(today)

	if start.After(end) {
		return ErrInvalidRange
	}

	if start.Before(today) || end.Before(today) {
		return ErrPastDate
	}

	return nil
}

// Conflicts reports whether [start, end] intersects any of the existing
// ranges. Intersection is inclusive on both endpoints: two bookings
// sharing a boundary day conflict, while back-to-back ranges (one ends
// the day before the next starts) do not. excludeID drops one booking
// from consideration so an in-place date update does not collide with
// itself; pass the empty string on create.
func Conflicts(existing []BookedRange, start, end time.Time, excludeID string) bool {
	start, end = Day(start), Day(end)

	for _, booked := range existing {
		if excludeID != "" && booked.BookingID == excludeID {
			continue
		}

		// existing.start <= new.end AND existing.end >= new.start
		if !Day(booked.Start).After(end) && !Day(booked.End).Before(start) {
			return true
		}
	}

	return false
}
