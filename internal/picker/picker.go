// Package picker models an open date picker: what it was opened for, which
// month the calendar shows, and the date the user has selected so far.
package picker

import (
	"spese-screen/internal/calendar"
	"spese-screen/internal/core"
)

// Kind tells what a confirmed selection applies to.
type Kind int

const (
	Adding Kind = iota
	EditingDate
	EditingExpense
)

func (k Kind) String() string {
	switch k {
	case Adding:
		return "adding"
	case EditingDate:
		return "editing_date"
	case EditingExpense:
		return "editing_expense"
	}
	return "unknown"
}

// Mode is fixed when the picker opens. ExpenseID is empty for Adding.
type Mode struct {
	Kind      Kind
	ExpenseID core.ExpenseID
}

func AddingMode() Mode {
	return Mode{Kind: Adding}
}

func EditingDateMode(id core.ExpenseID) Mode {
	return Mode{Kind: EditingDate, ExpenseID: id}
}

func EditingExpenseMode(id core.ExpenseID) Mode {
	return Mode{Kind: EditingExpense, ExpenseID: id}
}

type Picker struct {
	mode     Mode
	cursor   core.Date // day 1 of the displayed month
	selected core.Date
	input    string
}

// Open starts a picker on date, showing its month.
func Open(mode Mode, date core.Date) *Picker {
	return &Picker{
		mode:     mode,
		cursor:   calendar.ShiftMonth(date, 0),
		selected: date,
		input:    calendar.FormatInput(date),
	}
}

func (p *Picker) Mode() Mode {
	return p.mode
}

// Cursor returns day 1 of the displayed month.
func (p *Picker) Cursor() core.Date {
	return p.cursor
}

func (p *Picker) Selected() core.Date {
	return p.selected
}

// Input returns the DD/MM/YYYY text field.
func (p *Picker) Input() string {
	return p.input
}

func (p *Picker) SetInput(text string) {
	p.input = text
}

// ShiftMonth moves the displayed month. The selection is left alone.
func (p *Picker) ShiftMonth(offset int) {
	p.cursor = calendar.ShiftMonth(p.cursor, offset)
}

// SelectDay picks a day of the displayed month and mirrors it into the
// text field. It reports false for days the month does not have.
func (p *Picker) SelectDay(day int) bool {
	d, ok := calendar.WithDay(p.cursor, day)
	if !ok {
		return false
	}
	p.selected = d
	p.input = calendar.FormatInput(d)
	return true
}

// MoveSelection shifts the selected date by days, following it into another
// month when needed. When the displayed month does not hold the selection,
// the first move selects day 1 of the displayed month instead.
func (p *Picker) MoveSelection(days int) {
	if !p.SelectedInView() {
		p.SelectDay(1)
		return
	}
	d := core.DateOf(p.selected.AddDate(0, 0, days))
	p.selected = d
	p.cursor = calendar.ShiftMonth(d, 0)
	p.input = calendar.FormatInput(d)
}

// SelectedInView reports whether the selected day belongs to the displayed month.
func (p *Picker) SelectedInView() bool {
	return p.selected.Year() == p.cursor.Year() && p.selected.Month() == p.cursor.Month()
}

func (p *Picker) Grid() []calendar.Cell {
	return calendar.BuildMonthGrid(p.cursor.Year(), p.cursor.Month())
}

// Title renders the displayed month, e.g. "January 2025".
func (p *Picker) Title() string {
	return calendar.FormatMonthTitle(p.cursor)
}
