package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

const _requestIDFallbackBytes = 16

func GenerateUUID() string {
	return uuid.NewString()
}

// GenerateRequestID returns a random UUID, or 32 hex characters when the
// UUID generator cannot read enough randomness.
func GenerateRequestID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return GenerateHEX(_requestIDFallbackBytes)
	}
	return id.String()
}

func GenerateHEX(size int) string {
	bytes := make([]byte, size)
	if _, err := rand.Read(bytes); err != nil {
		return strings.Repeat("0", size*2)
	}
	return hex.EncodeToString(bytes)
}
