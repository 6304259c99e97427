// Package config handles evennia.toml bridge configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config is the bridge configuration: where the game server lives and how
// the client side behaves. Values load from evennia.toml and may be
// overridden by EVBRIDGE_* environment variables.
type Config struct {
	Server Server `toml:"server"`
	Client Client `toml:"client"`
	Log    Log    `toml:"log"`
}

// Server locates the Evennia portal endpoint.
type Server struct {
	Address string `toml:"address" env:"EVBRIDGE_ADDR"`
	Port    int    `toml:"port" env:"EVBRIDGE_PORT"`
}

// Client configures the local session.
type Client struct {
	// GUID identifies the client session to the portal so a dropped
	// connection can restore its server-side session.
	GUID string `toml:"guid" env:"EVBRIDGE_GUID"`
	// TranscriptPath is the SQLite transcript database; empty disables
	// transcript recording.
	TranscriptPath string `toml:"transcript-path" env:"EVBRIDGE_TRANSCRIPT"`
	// RecvCap overrides the per-read byte cap on the socket; zero keeps
	// the built-in default.
	RecvCap int `toml:"recv-cap" env:"EVBRIDGE_RECV_CAP"`
}

// Log configures diagnostic output.
type Log struct {
	// Verbosity maps onto the logging backend's verbosity scale.
	Verbosity int `toml:"verbosity" env:"EVBRIDGE_VERBOSITY"`
}

// Default returns the configuration used when no file is present: the
// conventional local Evennia portal endpoint.
func Default() *Config {
	return &Config{
		Server: Server{Address: "127.0.0.1", Port: 4000},
	}
}

// Load parses evennia.toml from the given directory, falling back to
// defaults when the file is absent, then applies environment overrides
// and validates the result.
func Load(dir string) (*Config, error) {
	c := Default()

	path := filepath.Join(dir, "evennia.toml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse error in %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults apply.
	default:
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration for values the socket layer would
// reject anyway, surfacing them with better messages.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("server address is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Client.RecvCap < 0 {
		return fmt.Errorf("recv-cap must not be negative")
	}
	return nil
}
