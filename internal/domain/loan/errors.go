package loan

import "errors"

var (
	ErrTransactionNotFound = errors.New("loan transaction not found")
	ErrZeroAmount          = errors.New("loan transaction amount must not be zero")
)
