package services

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns "<prefix>_<12 lowercase hex>" drawn from a random UUID.
func NewID(prefix string) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + "_" + hex[:12]
}
