package config

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// MaxWaitingTime is the longest wait, in seconds, a time.Duration can hold
const MaxWaitingTime = float64(math.MaxInt64) / float64(time.Second)

var (
	ErrInvalid  = errors.New("not a number")
	ErrNaN      = errors.New("value is NaN")
	ErrInf      = errors.New("value is infinite")
	ErrNegative = errors.New("value is negative")
	ErrTooLarge = errors.New("value is too large")
)

// ParseWaitingTime parses a number of seconds, like strconv.ParseFloat but
// without NaN, infinities, negative values or values overflowing a time.Duration
func ParseWaitingTime(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		var numErr *strconv.NumError
		// ParseFloat returns ±Inf with ErrRange for overflowing literals
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) && math.IsInf(value, 0) {
			return 0, ErrInf
		}
		return 0, ErrInvalid
	}

	if err := ValidateWaitingTime(value); err != nil {
		return 0, err
	}

	return value, nil
}

// ValidateWaitingTime rejects values that cannot be slept for
func ValidateWaitingTime(value float64) error {
	switch {
	case math.IsNaN(value):
		return ErrNaN
	case math.IsInf(value, 0):
		return ErrInf
	case value < 0:
		return ErrNegative
	case value >= MaxWaitingTime:
		return ErrTooLarge
	}
	return nil
}
