package ids

import "github.com/google/uuid"

// New returns a random, globally unique image identifier.
func New() string {
	return uuid.NewString()
}
