package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	DefaultProvider = "api"
	DefaultAPIURL   = "http://127.0.0.1:5000/api"
	defaultDataDir  = "~/.outliner"
	defaultTimeout  = 90
)

type Config struct {
	Generation struct {
		Provider       string `yaml:"provider"` // api, openai, gemini or ollama
		APIURL         string `yaml:"api_url"`  // generation service base URL
		APIKey         string `yaml:"api_key"`
		Model          string `yaml:"model"`
		BaseURL        string `yaml:"base_url"` // provider endpoint override
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"generation"`
	Storage struct {
		DataDir        string `yaml:"data_dir"`
		DBPath         string `yaml:"db_path"`
		PreferencesDir string `yaml:"preferences_dir"`
	} `yaml:"storage"`
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Generation.TimeoutSeconds) * time.Second
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Load YAML config
	var cfg Config
	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	// 3. Override with Environment Variables if present
	if apiKey := os.Getenv("OUTLINER_API_KEY"); apiKey != "" {
		cfg.Generation.APIKey = apiKey
	}
	if provider := os.Getenv("OUTLINER_PROVIDER"); provider != "" {
		cfg.Generation.Provider = provider
	}
	if apiURL := os.Getenv("OUTLINER_API_URL"); apiURL != "" {
		cfg.Generation.APIURL = apiURL
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() error {
	g := &c.Generation
	if strings.TrimSpace(g.Provider) == "" {
		g.Provider = DefaultProvider
	}
	if strings.TrimSpace(g.APIURL) == "" {
		g.APIURL = DefaultAPIURL
	}
	if g.TimeoutSeconds <= 0 {
		g.TimeoutSeconds = defaultTimeout
	}

	s := &c.Storage
	if strings.TrimSpace(s.DataDir) == "" {
		s.DataDir = defaultDataDir
	}
	dataDir, err := homedir.Expand(s.DataDir)
	if err != nil {
		return err
	}
	s.DataDir = dataDir
	if strings.TrimSpace(s.DBPath) == "" {
		s.DBPath = filepath.Join(dataDir, "outliner.db")
	}
	if strings.TrimSpace(s.PreferencesDir) == "" {
		s.PreferencesDir = filepath.Join(dataDir, "preferences")
	}
	if s.DBPath, err = homedir.Expand(s.DBPath); err != nil {
		return err
	}
	if s.PreferencesDir, err = homedir.Expand(s.PreferencesDir); err != nil {
		return err
	}
	return nil
}
