package id

import (
	"strings"

	"github.com/google/uuid"
)

// GetUUID generates a new UUID string.
func GetUUID() string {
	return uuid.NewString()
}

// GetUUIDWithoutDashes generates a new UUID without separators.
func GetUUIDWithoutDashes() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
