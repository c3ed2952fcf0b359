package id

import "github.com/google/uuid"

// Generator creates opaque IDs used to correlate requests in logs and
// response headers.
type Generator interface {
	NewID() string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// Valid reports whether an inbound request id is safe to echo back.
func Valid(raw string) bool {
	if raw == "" || len(raw) > 128 {
		return false
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
