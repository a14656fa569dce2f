package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spese-screen/internal/calendar"
	"spese-screen/internal/core"
	"spese-screen/internal/picker"
)

func (m Model) View() string {
	sections := []string{m.headerView()}

	switch {
	case m.svc.Picker() != nil:
		sections = append(sections, m.pickerView(m.svc.Picker()))
	case m.isEditing():
		sections = append(sections, m.editView())
	default:
		sections = append(sections, m.formView(), m.listView())
	}

	if m.status != "" {
		sections = append(sections, m.styles.errorText.Render(m.status))
	}
	sections = append(sections, m.styles.help.Render(m.helpView()))

	return m.styles.app.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) headerView() string {
	title := m.styles.title.Render("Expenses")
	total := m.styles.total.Render("Total " + m.svc.Total().String())
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "   ", total)
}

func (m Model) field(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.styles.label.Render(label), value)
}

func (m Model) formView() string {
	rows := []string{
		m.field("Description", m.description.View()),
		m.field("Amount", m.amount.View()),
		m.field("Date", calendar.FormatLong(m.svc.FormDate())),
	}
	return m.styles.panel.Render(strings.Join(rows, "\n"))
}

func (m Model) listView() string {
	expenses := m.svc.Expenses()
	if len(expenses) == 0 {
		return m.styles.muted.Render("No expenses yet")
	}

	descWidth := 0
	for _, e := range expenses {
		descWidth = max(descWidth, lipgloss.Width(e.Description))
	}

	lines := make([]string, 0, len(expenses))
	for i, e := range expenses {
		lines = append(lines, m.expenseRow(e, descWidth, m.focus == focusList && i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m Model) expenseRow(e core.Expense, descWidth int, active bool) string {
	marker := "  "
	style := m.styles.row
	if active {
		marker = "▸ "
		style = m.styles.rowActive
	}
	desc := e.Description + strings.Repeat(" ", descWidth-lipgloss.Width(e.Description))
	date := fmt.Sprintf("%-18s", calendar.FormatLong(e.Date))
	return style.Render(marker+desc+"  "+date) + " " + m.styles.amount.Render(e.Amount.String())
}

func (m Model) editView() string {
	draft, _ := m.svc.Editing()
	rows := []string{
		m.styles.title.Render("Edit expense"),
		m.field("Description", m.editDescription.View()),
		m.field("Amount", m.editAmount.View()),
		m.field("Date", calendar.FormatLong(draft.Date)),
	}
	return m.styles.panel.Render(strings.Join(rows, "\n"))
}

func (m Model) pickerView(p *picker.Picker) string {
	heading := map[picker.Kind]string{
		picker.Adding:         "Select date",
		picker.EditingDate:    "Change expense date",
		picker.EditingExpense: "Select date",
	}[p.Mode().Kind]

	rows := []string{
		m.styles.title.Render(heading),
		m.styles.monthTitle.Render("‹  " + p.Title() + "  ›"),
		m.weekdayRow(),
	}

	highlight := 0
	if p.SelectedInView() {
		highlight = p.Selected().Day()
	}
	for _, week := range calendar.Rows(p.Grid()) {
		cells := make([]string, 0, calendar.DaysPerWeek)
		for _, c := range week {
			switch {
			case c.IsBlank():
				cells = append(cells, m.styles.day.Render(""))
			case c.Day == highlight:
				cells = append(cells, m.styles.daySelect.Render(fmt.Sprint(c.Day)))
			default:
				cells = append(cells, m.styles.day.Render(fmt.Sprint(c.Day)))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	rows = append(rows, "", m.field(calendar.InputLayout, m.dateInput.View()))
	return m.styles.panel.Render(strings.Join(rows, "\n"))
}

func (m Model) weekdayRow() string {
	headers := calendar.WeekdayHeaders()
	cells := make([]string, 0, len(headers))
	for _, h := range headers {
		cells = append(cells, m.styles.dayHeader.Render(h))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) helpView() string {
	k := m.keys
	switch {
	case m.svc.Picker() != nil:
		return helpLine(k.PrevDay, k.NextDay, k.PrevWeek, k.NextWeek, k.PrevMonth, k.NextMonth, k.Submit, k.Cancel)
	case m.isEditing():
		return helpLine(k.NextField, k.Calendar, k.Submit, k.Cancel)
	case m.focus == focusList:
		return helpLine(k.Up, k.Down, k.Edit, k.EditDate, k.Delete, k.NextField, k.ToggleTheme, k.QuitList)
	}
	return helpLine(k.NextField, k.Calendar, k.Submit, k.ToggleTheme, k.Quit)
}
