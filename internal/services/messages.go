package services

import (
	"errors"

	"spese-screen/internal/calendar"
	"spese-screen/internal/core"
)

// UserMessage turns an operation error into the text shown on screen.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, core.ErrEmptyField):
		return "Please enter expense and amount"
	case errors.Is(err, core.ErrInvalidAmount):
		return "Please enter a valid amount"
	case errors.Is(err, core.ErrInvalidDate):
		return "Please enter a valid date (" + calendar.InputLayout + ")"
	case errors.Is(err, core.ErrExpenseNotFound):
		return "This expense no longer exists"
	case errors.Is(err, ErrNotEditing), errors.Is(err, ErrPickerClosed):
		return "Nothing to confirm"
	}
	return "Something went wrong"
}
