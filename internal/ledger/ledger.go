// Package ledger holds the expenses of one screen session in memory and
// enforces the rules every mutation must follow.
//
// Every operation is all-or-nothing: on error the collection is untouched.
// A Ledger is not safe for concurrent use; it is owned by a single UI loop.
package ledger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"spese-screen/internal/calendar"
	"spese-screen/internal/core"
)

type entry struct {
	expense core.Expense
	seq     uint64 // insertion order, used to break date ties
}

type Ledger struct {
	entries map[core.ExpenseID]*entry
	nextSeq uint64
	newID   func() core.ExpenseID
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithIDGenerator replaces the UUID generator, mostly useful in tests.
func WithIDGenerator(gen func() core.ExpenseID) Option {
	return func(l *Ledger) {
		l.newID = gen
	}
}

func New(opts ...Option) *Ledger {
	l := &Ledger{
		entries: make(map[core.ExpenseID]*entry),
		newID: func() core.ExpenseID {
			return core.ExpenseID(uuid.NewString())
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add validates the raw form input and stores a new expense.
func (l *Ledger) Add(description, amountText string, date core.Date) (core.Expense, error) {
	e, err := parseFields(description, amountText, date)
	if err != nil {
		return core.Expense{}, fmt.Errorf("add expense: %w", err)
	}
	if !l.fitsTotal(e.Amount, "") {
		return core.Expense{}, fmt.Errorf("add expense: total overflow: %w", core.ErrInvalidAmount)
	}

	id := l.newID()
	if _, exists := l.entries[id]; exists {
		return core.Expense{}, fmt.Errorf("add expense: duplicate id %q", id)
	}

	e.ID = id
	l.entries[id] = &entry{expense: e, seq: l.nextSeq}
	l.nextSeq++
	return e, nil
}

// Delete removes the expense if present. Unknown ids are ignored.
func (l *Ledger) Delete(id core.ExpenseID) {
	delete(l.entries, id)
}

// UpdateDate replaces the date of an expense from DD/MM/YYYY text.
func (l *Ledger) UpdateDate(id core.ExpenseID, dateText string) error {
	date, ok := calendar.ParseInput(dateText)
	if !ok {
		return fmt.Errorf("update date of %s: %w", id, core.ErrInvalidDate)
	}
	ent, ok := l.entries[id]
	if !ok {
		return fmt.Errorf("update date of %s: %w", id, core.ErrExpenseNotFound)
	}
	ent.expense.Date = date
	return nil
}

// UpdateFields replaces description, amount and date together.
func (l *Ledger) UpdateFields(id core.ExpenseID, description, amountText string, date core.Date) error {
	e, err := parseFields(description, amountText, date)
	if err != nil {
		return fmt.Errorf("update expense %s: %w", id, err)
	}
	ent, ok := l.entries[id]
	if !ok {
		return fmt.Errorf("update expense %s: %w", id, core.ErrExpenseNotFound)
	}
	if !l.fitsTotal(e.Amount, id) {
		return fmt.Errorf("update expense %s: total overflow: %w", id, core.ErrInvalidAmount)
	}
	e.ID = id
	ent.expense = e
	return nil
}

// Get returns a copy of the expense with the given id.
func (l *Ledger) Get(id core.ExpenseID) (core.Expense, bool) {
	ent, ok := l.entries[id]
	if !ok {
		return core.Expense{}, false
	}
	return ent.expense, true
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// Total sums every stored amount.
func (l *Ledger) Total() core.Money {
	var total core.Money
	for _, ent := range l.entries {
		total = total.Add(ent.expense.Amount)
	}
	return total
}

// fitsTotal reports whether amount can join the stored amounts, leaving out
// the expense with id skip, without overflowing the total.
func (l *Ledger) fitsTotal(amount core.Money, skip core.ExpenseID) bool {
	total := amount
	for id, ent := range l.entries {
		if id == skip {
			continue
		}
		var ok bool
		if total, ok = total.CheckedAdd(ent.expense.Amount); !ok {
			return false
		}
	}
	return true
}

// SortedView returns the expenses, most recent date first. Expenses sharing a
// date are listed newest addition first.
func (l *Ledger) SortedView() []core.Expense {
	ents := make([]*entry, 0, len(l.entries))
	for _, ent := range l.entries {
		ents = append(ents, ent)
	}
	sort.Slice(ents, func(i, j int) bool {
		a, b := ents[i], ents[j]
		if !a.expense.Date.Equal(b.expense.Date) {
			return a.expense.Date.After(b.expense.Date)
		}
		return a.seq > b.seq
	})

	out := make([]core.Expense, len(ents))
	for i, ent := range ents {
		out[i] = ent.expense
	}
	return out
}

// parseFields turns form text into an expense without an id.
func parseFields(description, amountText string, date core.Date) (core.Expense, error) {
	desc := strings.TrimSpace(description)
	if desc == "" || strings.TrimSpace(amountText) == "" {
		return core.Expense{}, core.ErrEmptyField
	}
	amount, err := core.ParseAmount(amountText)
	if err != nil {
		return core.Expense{}, err
	}
	e := core.Expense{Description: desc, Amount: amount, Date: date}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	return e, nil
}
