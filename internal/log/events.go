package log

import (
	"spese-screen/internal/core"
)

// StructuredLogger logs ledger events with consistent fields
type StructuredLogger struct {
	logger *Logger
}

// NewStructuredLogger creates a new structured logger
func NewStructuredLogger(logger *Logger) *StructuredLogger {
	if logger == nil {
		logger = Discard()
	}
	return &StructuredLogger{
		logger: logger.WithComponent(ComponentExpense),
	}
}

// LogExpenseCreated logs a successful add
func (sl *StructuredLogger) LogExpenseCreated(e core.Expense, size int, total core.Money) {
	fields := NewFields().
		WithExpense(e).
		WithLedger(size, total).
		WithOperation(OpCreate)

	sl.logger.Info("Expense created", fields.ToSlice()...)
}

// LogExpenseUpdated logs a successful field or date update
func (sl *StructuredLogger) LogExpenseUpdated(e core.Expense, total core.Money) {
	fields := NewFields().
		WithExpense(e).
		WithOperation(OpUpdate)
	fields[FieldTotalCents] = total.Cents

	sl.logger.Info("Expense updated", fields.ToSlice()...)
}

// LogExpenseDeleted logs a delete request; existed is false for unknown ids
func (sl *StructuredLogger) LogExpenseDeleted(id core.ExpenseID, existed bool, size int, total core.Money) {
	fields := NewFields().
		WithExpenseID(id).
		WithLedger(size, total).
		WithOperation(OpDelete)

	if !existed {
		sl.logger.Debug("Delete ignored for unknown expense", fields.ToSlice()...)
		return
	}
	sl.logger.Info("Expense deleted", fields.ToSlice()...)
}

// LogRejected logs input the ledger refused; these are user mistakes, not faults
func (sl *StructuredLogger) LogRejected(operation string, errType string, err error) {
	fields := NewFields().
		WithError(err).
		WithErrorType(errType).
		WithOperation(operation)

	sl.logger.Warn("Input rejected", fields.ToSlice()...)
}

// LogError logs an unexpected failure with structured context
func (sl *StructuredLogger) LogError(msg string, err error, operation string, fields LogFields) {
	if fields == nil {
		fields = NewFields()
	}
	allFields := fields.
		WithError(err).
		WithErrorType(ErrorTypeInternal).
		WithOperation(operation)

	sl.logger.Error(msg, allFields.ToSlice()...)
}
