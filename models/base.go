package models

import (
	"github.com/google/uuid"
)

// assignID gives a record a fresh uuid unless the caller already set one.
func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// IsValidID reports whether s is in the store's native identity format.
func IsValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
