package header

import (
	"fmt"

	"github.com/google/uuid"
)

// NewToken generates a random (version 4) UUID used as a correlation token.
func NewToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate correlation token: %w", err)
	}
	return id.String(), nil
}
