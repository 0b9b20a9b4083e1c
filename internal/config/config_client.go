package config

import (
	"fmt"
)

// ClientConfig is the configuration of the command-line client assembled
// from [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter Adapter
	// Session contains the location of the session marker.
	Session Session
	// LogFile is where the client writes its log; empty means next to the
	// executable.
	LogFile string
}

// GetClientConfig builds and validates the client configuration.
//
// Command-line flags are not read here: the CLI owns its flag set and
// overrides the returned values itself.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: cfg.Adapter,
		Session: cfg.Storage.Session,
		LogFile: cfg.ClientLogFile,
	}
}

// Validate re-checks the configuration after the CLI applied its flags.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
