package models

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page selects a window of an ordered listing. Number is 0-based.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps the page to sane bounds.
func (p Page) Normalize() Page {
	if p.Number < 0 {
		p.Number = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset returns the number of rows to skip.
func (p Page) Offset() uint64 {
	return uint64(p.Number) * uint64(p.Size)
}

// Credentials is the body of a login request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UsernameCheckResponse is the answer of the username-existence probe.
type UsernameCheckResponse struct {
	Username string `json:"username"`
	Exists   bool   `json:"exists"`
}
