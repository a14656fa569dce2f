// Package core provides money parsing and handling utilities.
//
// This file contains functions for parsing monetary amounts from user text
// and rendering them back for display and for editing.
package core

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every displayed amount.
const CurrencySymbol = "$"

var maxCents = decimal.NewFromInt(math.MaxInt64)

// ParseAmount converts a decimal string to Money with half-up rounding to cents.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. Signed
// input, non-finite values and anything that rounds to zero cents are rejected
// with ErrInvalidAmount.
//
// Examples:
//
//	ParseAmount("4.50")   -> Money{Cents: 450}, nil
//	ParseAmount("12,34")  -> Money{Cents: 1234}, nil
//	ParseAmount("1.005")  -> Money{Cents: 101}, nil (rounds up)
//	ParseAmount("0.001")  -> Money{}, ErrInvalidAmount
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	cents := d.Round(2).Shift(2)
	if !cents.IsPositive() || cents.GreaterThan(maxCents) {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents.IntPart()}, nil
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// CheckedAdd is Add that reports false when the sum does not fit in int64 cents.
func (m Money) CheckedAdd(other Money) (Money, bool) {
	sum := m.Cents + other.Cents
	if (other.Cents > 0 && sum < m.Cents) || (other.Cents < 0 && sum > m.Cents) {
		return Money{}, false
	}
	return Money{Cents: sum}, true
}

// Decimal returns the amount in currency units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Cents, -2)
}

// String renders the amount for display: currency symbol, exactly two
// decimals, no thousands separator.
func (m Money) String() string {
	return CurrencySymbol + m.Decimal().StringFixed(2)
}

// InputString renders the amount the way it is prefilled in an edit field,
// without symbol or trailing zeros ("4.5", "10").
func (m Money) InputString() string {
	return m.Decimal().String()
}
