package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mwalczyk-dev/postrisk"
)

// secretsFile is the layered credential store checked before the
// environment.
type secretsFile struct {
	GroqAPIKey string `yaml:"groq_api_key"`
}

// LoadAPIKey resolves the model-API credential: the local secrets file is
// checked first, the GROQ_API_KEY environment variable is the fallback.
func LoadAPIKey() (string, error) {
	if key := readSecretsKey(secretsPath()); key != "" {
		return key, nil
	}
	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		return key, nil
	}
	return "", postrisk.Errorf(postrisk.EUNAVAILABLE, "Groq API key not found in secrets file or GROQ_API_KEY")
}

// secretsPath returns the secrets file location: POSTRISK_SECRETS when set,
// otherwise ~/.config/postrisk/secrets.yaml.
func secretsPath() string {
	if path := os.Getenv("POSTRISK_SECRETS"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "postrisk", "secrets.yaml")
}

func readSecretsKey(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var s secretsFile
	if err := yaml.Unmarshal(data, &s); err != nil {
		return ""
	}
	return s.GroqAPIKey
}
