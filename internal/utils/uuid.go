package utils

import "github.com/google/uuid"

const maxTraceIDLength = 64

// NewTimeOrderedID returns a UUIDv7 string. It falls back to a random UUIDv4
// when the v7 generator fails.
func NewTimeOrderedID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// AccessKeyCodes issues the codes of rental access keys. Codes are UUIDv7,
// so keys of one user sort by the time they were paid for.
type AccessKeyCodes struct{}

func NewAccessKeyCodes() AccessKeyCodes {
	return AccessKeyCodes{}
}

func (AccessKeyCodes) Generate() string {
	return NewTimeOrderedID()
}

// TraceID returns raw when it is a usable trace id: non-empty, at most 64
// characters of [A-Za-z0-9._-]. Otherwise a new time-ordered id is returned.
func TraceID(raw string) string {
	if raw == "" || len(raw) > maxTraceIDLength {
		return NewTimeOrderedID()
	}
	for _, c := range raw {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_', c == '.':
		default:
			return NewTimeOrderedID()
		}
	}
	return raw
}
