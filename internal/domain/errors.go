package domain

import "errors"

var (
	ErrTrailingOperator    = errors.New("expression ends with an operator")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrMalformedExpression = errors.New("malformed expression")
	ErrNotANumber          = errors.New("segment is not a number")
	ErrUnknownAction       = errors.New("unknown action")
	ErrInvalidSettings     = errors.New("invalid settings")
	ErrSettingsFileExists  = errors.New("settings file already exists")
)
