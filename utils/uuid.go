package utils

import (
	"github.com/google/uuid"
)

// GenerateRequestID returns a new unique identifier for request tracing.
// Entity identifiers are store-assigned sequential integers, not UUIDs.
func GenerateRequestID() string {
	return uuid.New().String()
}
