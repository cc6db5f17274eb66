package config

// ClientConfig is the configuration of cmd/client. It is assembled from
// environment variables and the optional JSON file only; command-line
// arguments of the client are subcommands.
type ClientConfig struct {
	// Adapter contains the service address, timeout and credentials.
	Adapter Adapter
}

// GetClientConfig builds and validates the client configuration.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		buildClient()
}
