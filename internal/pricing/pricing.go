package pricing

import (
	"time"

	"github.com/samuel46u5/playstation-billing/internal/domain"
	customError "github.com/samuel46u5/playstation-billing/pkg/errors"
	"github.com/samuel46u5/playstation-billing/pkg/utils"

	"github.com/shopspring/decimal"
)

const minutesPerDay = 24 * 60

// ComputeRentalAmount turns a rate profile and a rental window into the
// amount due:
//
//	subtotal = hourlyRate * durationHours
//	+ (peakHourRate - hourlyRate) * durationHours  when the window touches the peak window
//	+ subtotal * (weekendMultiplier - 1)           when the start date is a weekend
//	- discount, clamped to >= 0
//
// The peak surcharge applies to the whole duration as soon as any part of
// the rental falls inside the peak window. That is the behavior the cashier
// software has always had; do not pro-rate to the overlapping hours only.
func ComputeRentalAmount(profile *domain.RateProfile, durationHours decimal.Decimal, start time.Time, discount decimal.Decimal) (decimal.Decimal, error) {
	if durationHours.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, customError.WrapInvalidDuration(durationHours.String())
	}

	subtotal := profile.HourlyRate.Mul(durationHours)
	total := subtotal

	if profile.HasPeakWindow() && touchesPeakWindow(start, durationHours, int(profile.PeakHourStart.Int32), int(profile.PeakHourEnd.Int32)) {
		peakDelta := profile.PeakHourRate.Decimal.Sub(profile.HourlyRate).Mul(durationHours)
		total = total.Add(peakDelta)
	}

	if profile.WeekendMultiplier.Valid && utils.IsWeekend(start) {
		weekendAmount := subtotal.Mul(profile.WeekendMultiplier.Decimal.Sub(decimal.NewFromInt(1)))
		total = total.Add(weekendAmount)
	}

	total = total.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	// Round to 2 decimal places for currency
	return total.Round(2), nil
}

// touchesPeakWindow reports whether the rental interval [start, start+duration)
// intersects the daily peak window [peakStartHour, peakEndHour). The rental
// may spill past midnight, so the shifted copy of the window on the next day
// is checked as well. Rentals of a full day or longer always touch it.
func touchesPeakWindow(start time.Time, durationHours decimal.Decimal, peakStartHour, peakEndHour int) bool {
	durationMinutes := durationHours.Mul(decimal.NewFromInt(60))
	if durationMinutes.GreaterThanOrEqual(decimal.NewFromInt(minutesPerDay)) {
		return true
	}

	rentalStart := decimal.NewFromInt(int64(utils.MinuteOfDay(start)))
	rentalEnd := rentalStart.Add(durationMinutes)

	for _, dayOffset := range []int64{0, minutesPerDay} {
		windowStart := decimal.NewFromInt(int64(peakStartHour)*60 + dayOffset)
		windowEnd := decimal.NewFromInt(int64(peakEndHour)*60 + dayOffset)
		if rentalStart.LessThan(windowEnd) && rentalEnd.GreaterThan(windowStart) {
			return true
		}
	}

	return false
}
