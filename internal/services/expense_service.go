package services

import (
	"errors"
	"fmt"
	"time"

	"spese-screen/internal/calendar"
	"spese-screen/internal/core"
	"spese-screen/internal/ledger"
	"spese-screen/internal/log"
	"spese-screen/internal/picker"
)

var (
	ErrPickerClosed = errors.New("date picker is not open")
	ErrNotEditing   = errors.New("no expense is being edited")
)

// EditDraft holds the edit form of one expense until it is saved.
type EditDraft struct {
	ID          core.ExpenseID
	Description string
	Amount      string
	Date        core.Date
}

// ExpenseService routes every screen action through the ledger and keeps the
// transient form state: the add-form date, the edit draft and the open picker.
type ExpenseService struct {
	ledger *ledger.Ledger
	logger *log.Logger
	events *log.StructuredLogger
	now    func() time.Time

	formDate core.Date
	edit     *EditDraft
	picker   *picker.Picker
}

// Option configures an ExpenseService.
type Option func(*ExpenseService)

// WithClock replaces time.Now, which decides the default form date.
func WithClock(now func() time.Time) Option {
	return func(s *ExpenseService) {
		s.now = now
	}
}

func NewExpenseService(l *ledger.Ledger, logger *log.Logger, opts ...Option) *ExpenseService {
	if l == nil {
		l = ledger.New()
	}
	if logger == nil {
		logger = log.Discard()
	}
	s := &ExpenseService{
		ledger: l,
		logger: logger.WithComponent(log.ComponentExpense),
		events: log.NewStructuredLogger(logger),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.formDate = s.today()
	return s
}

func (s *ExpenseService) today() core.Date {
	return core.DateOf(s.now())
}

// FormDate is the date a new expense will be added with.
func (s *ExpenseService) FormDate() core.Date {
	return s.formDate
}

// CreateExpense adds an expense dated with the form date. On success the form
// date goes back to today.
func (s *ExpenseService) CreateExpense(description, amount string) (core.Expense, error) {
	e, err := s.ledger.Add(description, amount, s.formDate)
	if err != nil {
		s.rejected(log.OpCreate, err)
		return core.Expense{}, err
	}
	s.formDate = s.today()
	s.events.LogExpenseCreated(e, s.ledger.Len(), s.ledger.Total())
	return e, nil
}

func (s *ExpenseService) DeleteExpense(id core.ExpenseID) {
	_, existed := s.ledger.Get(id)
	s.ledger.Delete(id)
	if s.edit != nil && s.edit.ID == id {
		s.edit = nil
	}
	if s.picker != nil && s.picker.Mode().ExpenseID == id {
		s.picker = nil
	}
	s.events.LogExpenseDeleted(id, existed, s.ledger.Len(), s.ledger.Total())
}

// StartEdit opens the edit form prefilled with the stored values.
func (s *ExpenseService) StartEdit(id core.ExpenseID) (EditDraft, error) {
	e, ok := s.ledger.Get(id)
	if !ok {
		err := fmt.Errorf("edit expense %s: %w", id, core.ErrExpenseNotFound)
		s.rejected(log.OpUpdate, err)
		return EditDraft{}, err
	}
	s.edit = &EditDraft{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount.InputString(),
		Date:        e.Date,
	}
	return *s.edit, nil
}

// Editing returns the current edit draft, if any.
func (s *ExpenseService) Editing() (EditDraft, bool) {
	if s.edit == nil {
		return EditDraft{}, false
	}
	return *s.edit, true
}

// SetEditFields stores what the user typed in the edit form.
func (s *ExpenseService) SetEditFields(description, amount string) error {
	if s.edit == nil {
		return ErrNotEditing
	}
	s.edit.Description = description
	s.edit.Amount = amount
	return nil
}

// SaveEdit writes the draft back in one step. The draft stays open on error.
func (s *ExpenseService) SaveEdit() error {
	if s.edit == nil {
		return ErrNotEditing
	}
	d := s.edit
	if err := s.ledger.UpdateFields(d.ID, d.Description, d.Amount, d.Date); err != nil {
		s.rejected(log.OpUpdate, err)
		return err
	}
	s.edit = nil
	if s.picker != nil && s.picker.Mode().Kind == picker.EditingExpense {
		s.picker = nil
	}
	s.logUpdated(d.ID)
	return nil
}

func (s *ExpenseService) CancelEdit() {
	if s.picker != nil && s.picker.Mode().Kind == picker.EditingExpense {
		s.picker = nil
	}
	s.edit = nil
}

// OpenPicker opens the date picker for mode, starting on the date that mode
// is about: the form date, the stored date, or the draft date.
func (s *ExpenseService) OpenPicker(mode picker.Mode) (*picker.Picker, error) {
	var start core.Date
	switch mode.Kind {
	case picker.Adding:
		start = s.formDate
	case picker.EditingDate:
		e, ok := s.ledger.Get(mode.ExpenseID)
		if !ok {
			err := fmt.Errorf("pick date for %s: %w", mode.ExpenseID, core.ErrExpenseNotFound)
			s.rejected(log.OpPick, err)
			return nil, err
		}
		start = e.Date
	case picker.EditingExpense:
		if s.edit == nil || s.edit.ID != mode.ExpenseID {
			return nil, ErrNotEditing
		}
		start = s.edit.Date
	default:
		return nil, fmt.Errorf("unknown picker mode %v", mode.Kind)
	}

	s.picker = picker.Open(mode, start)
	s.logger.Debug("Date picker opened",
		log.FieldPickerMode, mode.Kind.String(),
		log.FieldExpenseID, string(mode.ExpenseID),
		log.FieldDate, start.Format("2006-01-02"))
	return s.picker, nil
}

// Picker returns the open picker or nil.
func (s *ExpenseService) Picker() *picker.Picker {
	return s.picker
}

// ConfirmPicker applies the picker's text field according to its mode and
// closes it. The picker stays open when the text is not a valid date.
func (s *ExpenseService) ConfirmPicker() error {
	p := s.picker
	if p == nil {
		return ErrPickerClosed
	}
	mode := p.Mode()

	switch mode.Kind {
	case picker.EditingDate:
		if err := s.ledger.UpdateDate(mode.ExpenseID, p.Input()); err != nil {
			s.rejected(log.OpPick, err)
			return err
		}
		s.logUpdated(mode.ExpenseID)
	case picker.Adding, picker.EditingExpense:
		date, err := s.parsePickerInput(p)
		if err != nil {
			s.rejected(log.OpPick, err)
			return err
		}
		if mode.Kind == picker.Adding {
			s.formDate = date
		} else if s.edit != nil && s.edit.ID == mode.ExpenseID {
			s.edit.Date = date
		} else {
			return ErrNotEditing
		}
	}

	s.picker = nil
	return nil
}

func (s *ExpenseService) parsePickerInput(p *picker.Picker) (core.Date, error) {
	date, ok := calendar.ParseInput(p.Input())
	if !ok {
		return core.Date{}, fmt.Errorf("pick date: %w", core.ErrInvalidDate)
	}
	return date, nil
}

func (s *ExpenseService) ClosePicker() {
	s.picker = nil
}

// Expenses returns the ledger's display order, most recent first.
func (s *ExpenseService) Expenses() []core.Expense {
	return s.ledger.SortedView()
}

func (s *ExpenseService) Total() core.Money {
	return s.ledger.Total()
}

func (s *ExpenseService) logUpdated(id core.ExpenseID) {
	if e, ok := s.ledger.Get(id); ok {
		s.events.LogExpenseUpdated(e, s.ledger.Total())
	}
}

func (s *ExpenseService) rejected(op string, err error) {
	errType := errorType(err)
	if errType == log.ErrorTypeInternal {
		s.events.LogError("Expense operation failed", err, op, nil)
		return
	}
	s.events.LogRejected(op, errType, err)
}

func errorType(err error) string {
	switch {
	case errors.Is(err, core.ErrExpenseNotFound):
		return log.ErrorTypeNotFound
	case errors.Is(err, core.ErrEmptyField),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidDate):
		return log.ErrorTypeValidation
	}
	return log.ErrorTypeInternal
}
