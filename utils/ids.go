package utils

import (
	"github.com/google/uuid"
)

// NewID returns a fresh random identifier, used for bid IDs and session
// tokens alike.
func NewID() string {
	return uuid.NewString()
}
