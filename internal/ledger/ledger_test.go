package ledger

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"spese-screen/internal/core"
)

func sequentialIDs() Option {
	n := 0
	return WithIDGenerator(func() core.ExpenseID {
		n++
		return core.ExpenseID(fmt.Sprintf("exp-%d", n))
	})
}

func mustAdd(t *testing.T, l *Ledger, desc, amount string, date core.Date) core.Expense {
	t.Helper()
	e, err := l.Add(desc, amount, date)
	if err != nil {
		t.Fatalf("add %q: %v", desc, err)
	}
	return e
}

func TestAdd(t *testing.T) {
	l := New()
	d := core.NewDate(2025, 1, 1)

	e := mustAdd(t, l, "  Coffee  ", "4.50", d)
	if e.ID == "" {
		t.Fatal("expected an id to be assigned")
	}
	if e.Description != "Coffee" {
		t.Errorf("description = %q, want trimmed", e.Description)
	}
	if e.Amount.Cents != 450 {
		t.Errorf("amount = %d cents, want 450", e.Amount.Cents)
	}
	if !e.Date.Equal(d) {
		t.Errorf("date = %v, want %v", e.Date.Time, d.Time)
	}
	if l.Len() != 1 {
		t.Errorf("Len = %d, want 1", l.Len())
	}

	other := mustAdd(t, l, "Tea", "2", d)
	if other.ID == e.ID {
		t.Fatalf("ids must be unique, both were %q", e.ID)
	}
}

func TestAddValidation(t *testing.T) {
	d := core.NewDate(2025, 1, 1)
	tests := []struct {
		name        string
		description string
		amount      string
		date        core.Date
		want        error
	}{
		{"empty description", "", "5.00", d, core.ErrEmptyField},
		{"blank description", "   ", "5.00", d, core.ErrEmptyField},
		{"empty amount", "Coffee", "", d, core.ErrEmptyField},
		{"blank amount", "Coffee", "  ", d, core.ErrEmptyField},
		{"negative amount", "Coffee", "-1", d, core.ErrInvalidAmount},
		{"zero amount", "Coffee", "0", d, core.ErrInvalidAmount},
		{"non numeric amount", "Coffee", "four", d, core.ErrInvalidAmount},
		{"zero date", "Coffee", "1", core.Date{}, core.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			mustAdd(t, l, "Existing", "1", d)

			_, err := l.Add(tt.description, tt.amount, tt.date)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Add error = %v, want %v", err, tt.want)
			}
			if l.Len() != 1 {
				t.Errorf("ledger size changed to %d", l.Len())
			}
		})
	}
}

func TestAddRejectsDuplicateGeneratedID(t *testing.T) {
	l := New(WithIDGenerator(func() core.ExpenseID { return "same" }))
	mustAdd(t, l, "A", "1", core.NewDate(2025, 1, 1))
	if _, err := l.Add("B", "1", core.NewDate(2025, 1, 1)); err == nil {
		t.Fatal("expected duplicate id error")
	}
	if l.Len() != 1 {
		t.Fatalf("Len = %d, want 1", l.Len())
	}
}

func TestTotal(t *testing.T) {
	l := New()
	if got := l.Total(); got.Cents != 0 {
		t.Fatalf("empty total = %d, want 0", got.Cents)
	}

	d := core.NewDate(2025, 1, 1)
	mustAdd(t, l, "A", "10", d)
	before := l.Total()
	coffee := mustAdd(t, l, "Coffee", "4.50", d)
	after := l.Total()
	if after.Cents-before.Cents != 450 {
		t.Fatalf("total increased by %d cents, want 450", after.Cents-before.Cents)
	}
	if after.String() != "$14.50" {
		t.Errorf("total = %s, want $14.50", after)
	}

	l.Delete(coffee.ID)
	if got := l.Total(); got.Cents != 1000 {
		t.Errorf("total after delete = %d, want 1000", got.Cents)
	}
}

func TestTotalNeverOverflows(t *testing.T) {
	const maxAmount = "92233720368547758.07"
	d := core.NewDate(2025, 1, 1)

	t.Run("add", func(t *testing.T) {
		l := New()
		mustAdd(t, l, "Big", maxAmount, d)

		_, err := l.Add("Small", "1", d)
		if !errors.Is(err, core.ErrInvalidAmount) {
			t.Fatalf("error = %v, want ErrInvalidAmount", err)
		}
		if l.Len() != 1 {
			t.Errorf("Len = %d, want 1", l.Len())
		}
		if l.Total().Cents != math.MaxInt64 {
			t.Errorf("total = %d cents, want %d", l.Total().Cents, int64(math.MaxInt64))
		}
	})

	t.Run("update", func(t *testing.T) {
		l := New(sequentialIDs())
		mustAdd(t, l, "A", "0.01", d)
		b := mustAdd(t, l, "B", "0.02", d)

		err := l.UpdateFields(b.ID, "B", maxAmount, d)
		if !errors.Is(err, core.ErrInvalidAmount) {
			t.Fatalf("error = %v, want ErrInvalidAmount", err)
		}
		if got, _ := l.Get(b.ID); got.Amount.Cents != 2 {
			t.Errorf("rejected update changed amount to %d", got.Amount.Cents)
		}

		// The replaced amount does not count against the limit.
		if err := l.UpdateFields(b.ID, "B", "92233720368547758.06", d); err != nil {
			t.Fatalf("UpdateFields: %v", err)
		}
		if l.Total().Cents != math.MaxInt64 {
			t.Errorf("total = %d cents, want %d", l.Total().Cents, int64(math.MaxInt64))
		}
	})
}

func TestSortedViewDescendingByDate(t *testing.T) {
	l := New()
	a := mustAdd(t, l, "A", "10", core.NewDate(2025, 1, 1))
	b := mustAdd(t, l, "B", "5", core.NewDate(2025, 1, 5))

	view := l.SortedView()
	if len(view) != 2 || view[0].ID != b.ID || view[1].ID != a.ID {
		t.Fatalf("unexpected order: %+v", view)
	}
}

func TestSortedViewTieBreak(t *testing.T) {
	l := New(sequentialIDs())
	d := core.NewDate(2025, 2, 2)
	mustAdd(t, l, "first", "1", d)
	mustAdd(t, l, "older", "1", core.NewDate(2025, 2, 1))
	mustAdd(t, l, "second", "1", d)
	mustAdd(t, l, "third", "1", d)

	want := []string{"third", "second", "first", "older"}
	for run := 0; run < 5; run++ {
		view := l.SortedView()
		for i, e := range view {
			if e.Description != want[i] {
				t.Fatalf("run %d position %d: got %q, want %q", run, i, e.Description, want[i])
			}
		}
	}
}

func TestSortedViewIsACopy(t *testing.T) {
	l := New()
	e := mustAdd(t, l, "A", "1", core.NewDate(2025, 1, 1))
	view := l.SortedView()
	view[0].Description = "changed"

	got, _ := l.Get(e.ID)
	if got.Description != "A" {
		t.Fatalf("ledger mutated through view: %q", got.Description)
	}
}

func TestDelete(t *testing.T) {
	l := New()
	e := mustAdd(t, l, "A", "1", core.NewDate(2025, 1, 1))

	l.Delete("unknown")
	if l.Len() != 1 {
		t.Fatalf("delete of unknown id changed size to %d", l.Len())
	}

	l.Delete(e.ID)
	if l.Len() != 0 {
		t.Fatalf("Len = %d after delete, want 0", l.Len())
	}
	if _, ok := l.Get(e.ID); ok {
		t.Fatal("deleted expense still retrievable")
	}

	l.Delete(e.ID)
}

func TestUpdateDate(t *testing.T) {
	l := New()
	e := mustAdd(t, l, "A", "10", core.NewDate(2025, 1, 1))

	if err := l.UpdateDate(e.ID, "15/03/2025"); err != nil {
		t.Fatalf("UpdateDate: %v", err)
	}
	got, _ := l.Get(e.ID)
	if !got.Date.Equal(core.NewDate(2025, 3, 15)) {
		t.Errorf("date = %v, want 2025-03-15", got.Date.Time)
	}
	if got.Description != "A" || got.Amount.Cents != 1000 || got.ID != e.ID {
		t.Errorf("other fields changed: %+v", got)
	}
}

func TestUpdateDateInvalid(t *testing.T) {
	l := New()
	e := mustAdd(t, l, "A", "10", core.NewDate(2025, 1, 1))

	for _, text := range []string{"31/04/2024", "29/02/2023", "2025-03-15", ""} {
		if err := l.UpdateDate(e.ID, text); !errors.Is(err, core.ErrInvalidDate) {
			t.Errorf("UpdateDate(%q) error = %v, want ErrInvalidDate", text, err)
		}
	}
	got, _ := l.Get(e.ID)
	if !got.Date.Equal(core.NewDate(2025, 1, 1)) {
		t.Errorf("date changed to %v", got.Date.Time)
	}

	if err := l.UpdateDate("missing", "01/01/2025"); !errors.Is(err, core.ErrExpenseNotFound) {
		t.Errorf("UpdateDate(missing) error = %v, want ErrExpenseNotFound", err)
	}
}

func TestUpdateFields(t *testing.T) {
	l := New()
	e := mustAdd(t, l, "A", "10", core.NewDate(2025, 1, 1))

	if err := l.UpdateFields(e.ID, " Lunch ", "12,30", core.NewDate(2025, 2, 2)); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	got, _ := l.Get(e.ID)
	if got.Description != "Lunch" || got.Amount.Cents != 1230 || !got.Date.Equal(core.NewDate(2025, 2, 2)) {
		t.Fatalf("unexpected expense after update: %+v", got)
	}
	if got.ID != e.ID {
		t.Fatalf("id changed from %q to %q", e.ID, got.ID)
	}
}

func TestUpdateFieldsIsAtomic(t *testing.T) {
	original := core.NewDate(2025, 1, 1)
	tests := []struct {
		name        string
		description string
		amount      string
		want        error
	}{
		{"invalid amount", "Changed", "abc", core.ErrInvalidAmount},
		{"negative amount", "Changed", "-3", core.ErrInvalidAmount},
		{"empty description", "", "3", core.ErrEmptyField},
		{"empty amount", "Changed", "", core.ErrEmptyField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			e := mustAdd(t, l, "A", "10", original)

			err := l.UpdateFields(e.ID, tt.description, tt.amount, core.NewDate(2030, 6, 6))
			if !errors.Is(err, tt.want) {
				t.Fatalf("UpdateFields error = %v, want %v", err, tt.want)
			}
			got, _ := l.Get(e.ID)
			if got != e {
				t.Fatalf("expense changed: got %+v, want %+v", got, e)
			}
		})
	}
}

func TestUpdateFieldsUnknownID(t *testing.T) {
	l := New()
	err := l.UpdateFields("missing", "A", "1", core.NewDate(2025, 1, 1))
	if !errors.Is(err, core.ErrExpenseNotFound) {
		t.Fatalf("error = %v, want ErrExpenseNotFound", err)
	}
}
