package models

// ErrorResponse is the JSON body of every error answer.
type ErrorResponse struct {
	// Error is the HTTP status text, e.g. "Forbidden".
	Error string `json:"error"`

	// Message is a human-readable description of what went wrong.
	Message string `json:"message"`
}

// PageResponse wraps a page of items.
type PageResponse[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Size  int `json:"size"`
}

// VersionResponse describes the running build.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
