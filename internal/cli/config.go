package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Environment overrides for the global flags
const (
	envServer    = "PBFINDER_SERVER"
	envToken     = "PBFINDER_TOKEN"
	envTokenFile = "PBFINDER_TOKEN_FILE"
)

// Config is the CLI state shared by every command
type Config struct {
	ServerURL string
	Token     string
	TokenFile string
	Output    string // text or json
	Verbose   bool   // log each API call to stderr
}

func DefaultConfig() *Config {
	return &Config{
		ServerURL: envOr(envServer, "http://localhost:8080"),
		Token:     os.Getenv(envToken),
		TokenFile: envOr(envTokenFile, defaultTokenFile()),
		Output:    "text",
	}
}

// LoadToken reads the saved session token unless one was given explicitly.
// A missing token file is not an error.
func (c *Config) LoadToken() error {
	if c.Token != "" {
		return nil
	}
	data, err := os.ReadFile(c.TokenFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("read token file: %w", err)
	}
	c.Token = strings.TrimSpace(string(data))
	return nil
}

// SaveToken stores token for later invocations, readable only by the user
func (c *Config) SaveToken(token string) error {
	c.Token = token
	if err := os.MkdirAll(filepath.Dir(c.TokenFile), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(c.TokenFile, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

func (c *Config) ClearToken() error {
	c.Token = ""
	if err := os.Remove(c.TokenFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

func defaultTokenFile() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, ".pbfinder", "token")
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
