package util

import (
	"log"

	"github.com/google/uuid"
)

// NewAccountNumber returns a fresh account number. A 128-bit random UUID
// keeps the collision probability negligible without any global counter.
func NewAccountNumber() string {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		log.Fatalf("Failed to generate account number: %v", err)
	}
	return newUUID.String()
}
