package utils

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// AddHours advances t by a possibly fractional number of hours.
func AddHours(t time.Time, hours decimal.Decimal) time.Time {
	nanos := hours.Mul(decimal.NewFromInt(int64(time.Hour))).IntPart()
	return t.Add(time.Duration(nanos))
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MinuteOfDay returns the minute offset of t within its day (0..1439).
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// GenerateVerificationCode returns a random numeric code of the given
// length, zero-padded. Uses crypto/rand so codes are not guessable from
// previous ones.
func GenerateVerificationCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
