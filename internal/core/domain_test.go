package core

import (
	"errors"
	"testing"
	"time"
)

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2025, 1, 1), true},
		{NewDate(2025, 12, 31), true},
		{Date{Time: time.Time{}}, false}, // zero time
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("case %d expected ErrInvalidDate, got %v", i, err)
		}
	}
}

func TestDateOfDropsClock(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	d := DateOf(time.Date(2025, 3, 4, 23, 30, 0, 0, loc))
	if !d.Equal(NewDate(2025, 3, 4)) {
		t.Fatalf("expected 2025-03-04, got %v", d.Time)
	}
	if d.Hour() != 0 || d.Location() != time.UTC {
		t.Fatalf("expected UTC midnight, got %v", d.Time)
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2025, 1, 1)
	b := NewDate(2025, 1, 5)
	if !a.Before(b) || !b.After(a) || a.Equal(b) {
		t.Fatalf("unexpected ordering between %v and %v", a.Time, b.Time)
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		ID:          "x",
		Date:        NewDate(2025, 1, 1),
		Description: "ok",
		Amount:      Money{Cents: 100},
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []struct {
		e    Expense
		want error
	}{
		{Expense{Date: NewDate(2025, 1, 1), Description: "  ", Amount: Money{Cents: 1}}, ErrEmptyField},
		{Expense{Date: NewDate(2025, 1, 1), Description: "a", Amount: Money{Cents: 0}}, ErrInvalidAmount},
		{Expense{Date: Date{}, Description: "a", Amount: Money{Cents: 1}}, ErrInvalidDate},
	}
	for i, tc := range bads {
		if err := tc.e.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
	}
}
