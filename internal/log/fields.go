package log

import "spese-screen/internal/core"

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldErrorType   = "error_type"
	FieldExpenseID   = "expense_id"
	FieldExpenseDesc = "expense_description"
	FieldAmountCents = "amount_cents"
	FieldDate        = "date"
	FieldPickerMode  = "picker_mode"
	FieldLedgerSize  = "ledger_size"
	FieldTotalCents  = "total_cents"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentTUI     = "tui"
	ComponentExpense = "expense"
	ComponentPicker  = "picker"
	ComponentConfig  = "config"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpPick     = "pick"
	OpValidate = "validate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeNotFound      = "not_found_error"
	ErrorTypeInternal      = "internal_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithErrorType adds the error category
func (f LogFields) WithErrorType(errType string) LogFields {
	f[FieldErrorType] = errType
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithExpense adds expense-related fields
func (f LogFields) WithExpense(e core.Expense) LogFields {
	f[FieldExpenseID] = string(e.ID)
	f[FieldExpenseDesc] = e.Description
	f[FieldAmountCents] = e.Amount.Cents
	f[FieldDate] = e.Date.Format("2006-01-02")
	return f
}

// WithExpenseID adds only the expense id, for operations where the record is gone
func (f LogFields) WithExpenseID(id core.ExpenseID) LogFields {
	f[FieldExpenseID] = string(id)
	return f
}

// WithLedger adds ledger size and total after a mutation
func (f LogFields) WithLedger(size int, total core.Money) LogFields {
	f[FieldLedgerSize] = size
	f[FieldTotalCents] = total.Cents
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
