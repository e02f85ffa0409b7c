package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const clientConfigFileName = ".termninja.yaml"

// configFs is swapped for an in-memory filesystem in tests.
var configFs = afero.NewOsFs()

// ClientConfig is the state the CLI keeps between invocations.
type ClientConfig struct {
	RegistryURL string `yaml:"registry_url,omitempty"`
	Username    string `yaml:"username,omitempty"`
	AccessToken string `yaml:"access_token,omitempty"`
}

func clientConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, clientConfigFileName), nil
}

// readClientConfig returns an empty config if the file does not exist yet.
func readClientConfig(fs afero.Fs, path string) (*ClientConfig, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &ClientConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg ClientConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// writeClientConfig stores the config readable by the current user only, since it holds the access token.
func writeClientConfig(fs afero.Fs, path string, cfg *ClientConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode client config: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func loadClientConfig() (*ClientConfig, error) {
	path, err := clientConfigPath()
	if err != nil {
		return nil, err
	}
	return readClientConfig(configFs, path)
}

func saveClientConfig(cfg *ClientConfig) error {
	path, err := clientConfigPath()
	if err != nil {
		return err
	}
	return writeClientConfig(configFs, path, cfg)
}
