package pricing

import (
	"database/sql"
	"testing"
	"time"

	"github.com/samuel46u5/playstation-billing/internal/domain"
	customError "github.com/samuel46u5/playstation-billing/pkg/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func baseProfile(hourly int64) *domain.RateProfile {
	return &domain.RateProfile{
		Name:       "PS5 Regular",
		HourlyRate: decimal.NewFromInt(hourly),
	}
}

func withPeak(p *domain.RateProfile, rate int64, startHour, endHour int) *domain.RateProfile {
	p.PeakHourRate = decimal.NewNullDecimal(decimal.NewFromInt(rate))
	p.PeakHourStart = sql.NullInt32{Int32: int32(startHour), Valid: true}
	p.PeakHourEnd = sql.NullInt32{Int32: int32(endHour), Valid: true}
	return p
}

func withWeekendMultiplier(p *domain.RateProfile, multiplier float64) *domain.RateProfile {
	p.WeekendMultiplier = decimal.NewNullDecimal(decimal.NewFromFloat(multiplier))
	return p
}

func TestComputeRentalAmount(t *testing.T) {
	// 2025-01-07 is a Tuesday, 2025-01-04 a Saturday
	weekday := time.Date(2025, 1, 7, 12, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 1, 4, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		profile  *domain.RateProfile
		duration decimal.Decimal
		start    time.Time
		discount decimal.Decimal
		expected decimal.Decimal
	}{
		{
			name:     "plain hourly rate times duration",
			profile:  baseProfile(15000),
			duration: decimal.NewFromInt(3),
			start:    weekday,
			discount: decimal.Zero,
			expected: decimal.NewFromInt(45000), // 15,000 * 3
		},
		{
			name:     "fractional duration",
			profile:  baseProfile(10000),
			duration: decimal.NewFromFloat(1.5),
			start:    weekday,
			discount: decimal.Zero,
			expected: decimal.NewFromInt(15000),
		},
		{
			name:     "peak delta added for full duration when window touched",
			profile:  withPeak(baseProfile(10000), 15000, 18, 22),
			duration: decimal.NewFromInt(2),
			start:    time.Date(2025, 1, 7, 17, 0, 0, 0, time.UTC), // 17:00-19:00, touches 18:00
			discount: decimal.Zero,
			expected: decimal.NewFromInt(30000), // 20,000 + (15,000-10,000)*2
		},
		{
			name:     "no peak delta when window missed entirely",
			profile:  withPeak(baseProfile(10000), 15000, 18, 22),
			duration: decimal.NewFromInt(2),
			start:    time.Date(2025, 1, 7, 10, 0, 0, 0, time.UTC),
			discount: decimal.Zero,
			expected: decimal.NewFromInt(20000),
		},
		{
			name:     "rental ending exactly at peak start stays off-peak",
			profile:  withPeak(baseProfile(10000), 15000, 18, 22),
			duration: decimal.NewFromInt(2),
			start:    time.Date(2025, 1, 7, 16, 0, 0, 0, time.UTC), // 16:00-18:00
			discount: decimal.Zero,
			expected: decimal.NewFromInt(20000),
		},
		{
			name:     "overnight rental catches next day's peak window",
			profile:  withPeak(baseProfile(10000), 15000, 18, 22),
			duration: decimal.NewFromInt(20),
			start:    time.Date(2025, 1, 7, 23, 0, 0, 0, time.UTC), // 23:00 + 20h -> 19:00 next day
			discount: decimal.Zero,
			expected: decimal.NewFromInt(300000), // 200,000 + 5,000*20
		},
		{
			name:     "weekend multiplier on saturday",
			profile:  withWeekendMultiplier(baseProfile(10000), 1.5),
			duration: decimal.NewFromInt(2),
			start:    saturday,
			discount: decimal.Zero,
			expected: decimal.NewFromInt(30000), // 20,000 + 20,000*0.5
		},
		{
			name:     "weekend multiplier ignored on weekday",
			profile:  withWeekendMultiplier(baseProfile(10000), 1.5),
			duration: decimal.NewFromInt(2),
			start:    weekday,
			discount: decimal.Zero,
			expected: decimal.NewFromInt(20000),
		},
		{
			name:     "peak and weekend stack additively",
			profile:  withWeekendMultiplier(withPeak(baseProfile(10000), 15000, 18, 22), 1.5),
			duration: decimal.NewFromInt(2),
			start:    time.Date(2025, 1, 4, 18, 0, 0, 0, time.UTC),
			discount: decimal.Zero,
			expected: decimal.NewFromInt(40000), // 20,000 + 10,000 peak + 10,000 weekend
		},
		{
			name:     "discount subtracted last",
			profile:  baseProfile(15000),
			duration: decimal.NewFromInt(3),
			start:    weekday,
			discount: decimal.NewFromInt(5000),
			expected: decimal.NewFromInt(40000),
		},
		{
			name:     "oversized discount clamps to zero",
			profile:  baseProfile(10000),
			duration: decimal.NewFromInt(1),
			start:    weekday,
			discount: decimal.NewFromInt(50000),
			expected: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := ComputeRentalAmount(tt.profile, tt.duration, tt.start, tt.discount)
			assert.NoError(t, err)
			assert.True(t, total.Equal(tt.expected),
				"expected %v, got %v", tt.expected, total)
		})
	}
}

func TestComputeRentalAmount_InvalidDuration(t *testing.T) {
	for _, duration := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-2)} {
		_, err := ComputeRentalAmount(baseProfile(10000), duration, time.Now(), decimal.Zero)
		assert.Error(t, err)
		assert.ErrorIs(t, err, customError.ErrInvalidDuration)
	}
}

func TestTouchesPeakWindow_FullDayAlwaysTouches(t *testing.T) {
	start := time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)
	assert.True(t, touchesPeakWindow(start, decimal.NewFromInt(24), 18, 22))
}
