// Package tui renders the expense screen in the terminal and forwards key
// presses to the expense service. It holds no expense state of its own.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"spese-screen/internal/core"
	"spese-screen/internal/log"
	"spese-screen/internal/picker"
	"spese-screen/internal/services"
)

type focus int

const (
	focusDescription focus = iota
	focusAmount
	focusList
)

type Options struct {
	DarkMode bool
	Logger   *log.Logger
}

type Model struct {
	svc    *services.ExpenseService
	logger *log.Logger
	keys   keyMap
	styles styles
	dark   bool

	description textinput.Model
	amount      textinput.Model
	focus       focus
	cursor      int

	editDescription textinput.Model
	editAmount      textinput.Model
	editFocus       focus

	dateInput textinput.Model

	status string
	width  int
	height int
}

func New(svc *services.ExpenseService, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	m := Model{
		svc:             svc,
		logger:          logger.WithComponent(log.ComponentTUI),
		keys:            defaultKeyMap(),
		styles:          newStyles(opts.DarkMode),
		dark:            opts.DarkMode,
		description:     newInput("What did you buy?", 80),
		amount:          newInput("0.00", 16),
		editDescription: newInput("Description", 80),
		editAmount:      newInput("Amount", 16),
		dateInput:       newInput("DD/MM/YYYY", 10),
	}
	m.description.Focus()
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	return ti
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.logger.Info("Screen closed", log.FieldOperation, log.OpShutdown)
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.ToggleTheme) {
			m.dark = !m.dark
			m.styles = newStyles(m.dark)
			return m, nil
		}
		switch {
		case m.svc.Picker() != nil:
			return m.updatePicker(msg)
		case m.isEditing():
			return m.updateEdit(msg)
		default:
			return m.updateMain(msg)
		}
	}
	return m, nil
}

func (m Model) isEditing() bool {
	_, ok := m.svc.Editing()
	return ok
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		return m.setFocus((m.focus + 1) % 3), nil
	case key.Matches(msg, m.keys.PrevField):
		return m.setFocus((m.focus + 2) % 3), nil
	case key.Matches(msg, m.keys.Calendar):
		return m.openPicker(picker.AddingMode())
	}

	if m.focus == focusList {
		return m.updateList(msg)
	}

	if key.Matches(msg, m.keys.Submit) {
		return m.addExpense()
	}

	var cmd tea.Cmd
	if m.focus == focusDescription {
		m.description, cmd = m.description.Update(msg)
	} else {
		m.amount, cmd = m.amount.Update(msg)
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	expenses := m.svc.Expenses()
	switch {
	case key.Matches(msg, m.keys.QuitList):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(expenses)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Delete):
		if e, ok := m.selected(expenses); ok {
			m.svc.DeleteExpense(e.ID)
			m.status = ""
			m.clampCursor()
		}
	case key.Matches(msg, m.keys.EditDate):
		if e, ok := m.selected(expenses); ok {
			return m.openPicker(picker.EditingDateMode(e.ID))
		}
	case key.Matches(msg, m.keys.Edit):
		if e, ok := m.selected(expenses); ok {
			return m.startEdit(e.ID)
		}
	}
	return m, nil
}

func (m Model) selected(expenses []core.Expense) (core.Expense, bool) {
	if m.cursor < 0 || m.cursor >= len(expenses) {
		return core.Expense{}, false
	}
	return expenses[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.svc.Expenses())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) setFocus(f focus) Model {
	m.focus = f
	m.description.Blur()
	m.amount.Blur()
	switch f {
	case focusDescription:
		m.description.Focus()
	case focusAmount:
		m.amount.Focus()
	}
	return m
}

func (m Model) addExpense() (tea.Model, tea.Cmd) {
	_, err := m.svc.CreateExpense(m.description.Value(), m.amount.Value())
	if err != nil {
		m.status = services.UserMessage(err)
		return m, nil
	}
	m.status = ""
	m.description.SetValue("")
	m.amount.SetValue("")
	return m.setFocus(focusDescription), nil
}

func (m Model) startEdit(id core.ExpenseID) (tea.Model, tea.Cmd) {
	draft, err := m.svc.StartEdit(id)
	if err != nil {
		m.status = services.UserMessage(err)
		return m, nil
	}
	m.status = ""
	m.editDescription.SetValue(draft.Description)
	m.editAmount.SetValue(draft.Amount)
	return m.setEditFocus(focusDescription), nil
}

func (m Model) setEditFocus(f focus) Model {
	m.editFocus = f
	m.editDescription.Blur()
	m.editAmount.Blur()
	if f == focusDescription {
		m.editDescription.Focus()
	} else {
		m.editAmount.Focus()
	}
	return m
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.svc.CancelEdit()
		m.status = ""
		return m, nil
	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		if m.editFocus == focusDescription {
			return m.setEditFocus(focusAmount), nil
		}
		return m.setEditFocus(focusDescription), nil
	case key.Matches(msg, m.keys.Calendar):
		if err := m.syncEditFields(); err != nil {
			m.status = services.UserMessage(err)
			return m, nil
		}
		draft, _ := m.svc.Editing()
		return m.openPicker(picker.EditingExpenseMode(draft.ID))
	case key.Matches(msg, m.keys.Submit):
		if err := m.syncEditFields(); err != nil {
			m.status = services.UserMessage(err)
			return m, nil
		}
		if err := m.svc.SaveEdit(); err != nil {
			m.status = services.UserMessage(err)
			if errors.Is(err, core.ErrExpenseNotFound) {
				m.svc.CancelEdit()
			}
			return m, nil
		}
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	if m.editFocus == focusDescription {
		m.editDescription, cmd = m.editDescription.Update(msg)
	} else {
		m.editAmount, cmd = m.editAmount.Update(msg)
	}
	return m, cmd
}

func (m Model) syncEditFields() error {
	return m.svc.SetEditFields(m.editDescription.Value(), m.editAmount.Value())
}

func (m Model) openPicker(mode picker.Mode) (tea.Model, tea.Cmd) {
	p, err := m.svc.OpenPicker(mode)
	if err != nil {
		m.status = services.UserMessage(err)
		return m, nil
	}
	m.status = ""
	m.dateInput.SetValue(p.Input())
	m.dateInput.CursorEnd()
	return m, m.dateInput.Focus()
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.svc.Picker()
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.svc.ClosePicker()
		m.dateInput.Blur()
		m.status = ""
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		p.SetInput(m.dateInput.Value())
		if err := m.svc.ConfirmPicker(); err != nil {
			m.status = services.UserMessage(err)
			if !errors.Is(err, core.ErrInvalidDate) {
				m.svc.ClosePicker()
			}
			return m, nil
		}
		m.dateInput.Blur()
		m.status = ""
		return m, nil
	case key.Matches(msg, m.keys.PrevDay):
		p.MoveSelection(-1)
	case key.Matches(msg, m.keys.NextDay):
		p.MoveSelection(1)
	case key.Matches(msg, m.keys.PrevWeek):
		p.MoveSelection(-7)
	case key.Matches(msg, m.keys.NextWeek):
		p.MoveSelection(7)
	case key.Matches(msg, m.keys.PrevMonth):
		p.ShiftMonth(-1)
		return m, nil
	case key.Matches(msg, m.keys.NextMonth):
		p.ShiftMonth(1)
		return m, nil
	default:
		var cmd tea.Cmd
		m.dateInput, cmd = m.dateInput.Update(msg)
		p.SetInput(m.dateInput.Value())
		return m, cmd
	}

	m.dateInput.SetValue(p.Input())
	m.dateInput.CursorEnd()
	return m, nil
}
