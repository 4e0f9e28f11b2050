package pricing

import (
	"time"

	"github.com/samuel46u5/playstation-billing/internal/domain"
	"github.com/samuel46u5/playstation-billing/pkg/utils"

	"github.com/shopspring/decimal"
)

// Interval is the occupancy view of a booking or an open rental: the
// half-open window [StartTime, EndTime) it holds on a resource.
type Interval struct {
	ResourceID string
	StartTime  time.Time
	EndTime    time.Time
}

// BookingIntervals projects bookings onto the intervals they occupy.
// Cancelled bookings hold nothing.
func BookingIntervals(bookings []*domain.Booking) []Interval {
	intervals := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == domain.BookingStatusCancelled {
			continue
		}
		intervals = append(intervals, Interval{
			ResourceID: b.ResourceID,
			StartTime:  b.StartTime,
			EndTime:    b.EndTime,
		})
	}
	return intervals
}

// RentalIntervals projects rentals onto the intervals they occupy. Only
// active rentals hold their slot; closed rentals are history.
func RentalIntervals(rentals []*domain.Rental) []Interval {
	intervals := make([]Interval, 0, len(rentals))
	for _, r := range rentals {
		if r.Status != domain.RentalStatusActive {
			continue
		}
		intervals = append(intervals, Interval{
			ResourceID: r.ResourceID,
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
		})
	}
	return intervals
}

// HasSchedulingConflict reports whether the candidate interval
// [start, start+duration) overlaps any occupied interval on the same
// resource. Intervals are half-open, so an interval ending exactly when the
// candidate starts is not a conflict and back-to-back sessions are fine.
//
// The check is advisory: it runs against whatever snapshot of intervals the
// caller fetched, and two concurrent creators can both pass it. The
// exclusion constraint on the bookings table is what actually closes that
// race for bookings.
func HasSchedulingConflict(resourceID string, start time.Time, durationHours decimal.Decimal, occupied []Interval) bool {
	end := utils.AddHours(start, durationHours)

	for _, iv := range occupied {
		if iv.ResourceID != resourceID {
			continue
		}
		if start.Before(iv.EndTime) && end.After(iv.StartTime) {
			return true
		}
	}

	return false
}
