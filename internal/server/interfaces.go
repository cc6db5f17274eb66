package server

// Server is the lifecycle of the rental API process.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then drains
	// in-flight requests. A listener failure is returned as an error.
	RunServer() error

	// Shutdown stops accepting connections and waits for active requests.
	Shutdown() error
}
