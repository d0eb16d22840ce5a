package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a referenced record that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID marks an identity string that is not in the store's format.
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidInput marks a field value outside its declared constraints.
	ErrInvalidInput = errors.New("invalid input")

	ErrMenuItemNotFound = fmt.Errorf("menu item %w", ErrNotFound)
	ErrOrderNotFound    = fmt.Errorf("order %w", ErrNotFound)
)
