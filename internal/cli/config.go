package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration.
//
// The stored username is the client's whole notion of identity: the API
// issues no token, so whatever name is saved here is sent as the author of
// new pins.
type Config struct {
	ServerURL    string
	Username     string
	UsernameFile string
	Output       string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:    getEnvOrDefault("PINDROP_SERVER", "http://localhost:8800"),
		Username:     os.Getenv("PINDROP_USERNAME"),
		UsernameFile: getEnvOrDefault("PINDROP_USERNAME_FILE", defaultUsernameFile()),
		Output:       "text",
	}
}

// LoadUsername loads the stored username from file if not already set
func (c *Config) LoadUsername() error {
	if c.Username != "" {
		return nil
	}

	data, err := os.ReadFile(c.UsernameFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Not logged in yet is fine
		}
		return err
	}

	c.Username = strings.TrimSpace(string(data))
	return nil
}

// SaveUsername saves the username to the username file
func (c *Config) SaveUsername(username string) error {
	c.Username = username

	dir := filepath.Dir(c.UsernameFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.UsernameFile, []byte(username), 0600)
}

func defaultUsernameFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pindrop/username"
	}
	return filepath.Join(home, ".pindrop", "username")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
