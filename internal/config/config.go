// Package config loads QuickHelp client settings from YAML, .env and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"quickhelp/internal/controller"
)

// DefaultFile is looked up in the working directory, then in ./config/.
const DefaultFile = "quickhelp.yaml"

// Environment variables that override file values.
const (
	EnvBackendURL = "QUICKHELP_BACKEND_URL"
	EnvAddr       = "QUICKHELP_ADDR"
	EnvLogLevel   = "QUICKHELP_LOG_LEVEL"
	EnvEnv        = "ENV"
)

// Config holds the QuickHelp client configuration.
type Config struct {
	Env     string        `yaml:"env"` // local, dev, test, prod
	Backend BackendConfig `yaml:"backend"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	UI      UIConfig      `yaml:"ui"`
}

// BackendConfig locates the QuickHelp backend.
type BackendConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"` // 0 = no timeout
}

// ServerConfig holds web UI server settings.
type ServerConfig struct {
	Addr            string   `yaml:"addr"`
	CORSOrigins     []string `yaml:"cors_origins"`
	ReadTimeoutSec  int      `yaml:"read_timeout_sec"`
	WriteTimeoutSec int      `yaml:"write_timeout_sec"`
	ShutdownSec     int      `yaml:"shutdown_timeout_sec"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
	File  string `yaml:"file"`  // terminal UI log file
}

// UIConfig holds front end defaults shared by the terminal and web UIs.
type UIConfig struct {
	InitialTab string   `yaml:"initial_tab"`
	MaxResults int      `yaml:"max_results"`
	SearchMode string   `yaml:"search_mode"`
	AskMode    string   `yaml:"ask_mode"`
	Algorithm  string   `yaml:"algorithm"`
	IndexPath  string   `yaml:"index_path"`
	Modes      []string `yaml:"modes"`
	Algorithms []string `yaml:"algorithms"`
}

// Load reads configuration from path. An empty path searches for
// DefaultFile and falls back to defaults when there is none. A .env file
// in the working directory is loaded first.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if path == "" {
		path = findConfigPath()
	}
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}

		// Substitute env variables of the form ${VAR}
		data = expandEnvVars(data)

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv(EnvEnv); env != "" {
		return env
	}
	return "local"
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvBackendURL); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvEnv); v != "" {
		c.Env = v
	}
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Env == "" {
		c.Env = GetEnv()
	}
	if c.Backend.URL == "" {
		c.Backend.URL = "http://127.0.0.1:5000"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.Server.ReadTimeoutSec <= 0 {
		c.Server.ReadTimeoutSec = 10
	}
	if c.Server.WriteTimeoutSec <= 0 {
		// Index and cluster requests can run long on the backend.
		c.Server.WriteTimeoutSec = 300
	}
	if c.Server.ShutdownSec <= 0 {
		c.Server.ShutdownSec = 10
	}
	if c.Logging.File == "" {
		c.Logging.File = filepath.Join(os.TempDir(), "quickhelp.log")
	}
	if c.UI.InitialTab == "" {
		c.UI.InitialTab = controller.TabSearch.String()
	}
	if c.UI.MaxResults <= 0 {
		c.UI.MaxResults = controller.DefaultMaxResults
	}
	if c.UI.SearchMode == "" {
		c.UI.SearchMode = "hybrid"
	}
	if c.UI.AskMode == "" {
		c.UI.AskMode = controller.DefaultAskMode
	}
	if c.UI.Algorithm == "" {
		c.UI.Algorithm = "hdbscan"
	}
	if c.UI.IndexPath == "" {
		c.UI.IndexPath = "./data/documents"
	}
	if len(c.UI.Modes) == 0 {
		c.UI.Modes = []string{"keyword", "semantic", "hybrid"}
	}
	if len(c.UI.Algorithms) == 0 {
		c.UI.Algorithms = []string{"hdbscan", "kmeans", "hierarchical"}
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	switch c.Env {
	case "local", "dev", "test", "prod":
	default:
		return fmt.Errorf("env must be one of local, dev, test, prod, got %q", c.Env)
	}

	u, err := url.Parse(c.Backend.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("backend.url must be an absolute http(s) URL, got %q", c.Backend.URL)
	}
	if c.Backend.Timeout < 0 {
		return fmt.Errorf("backend.timeout must not be negative, got %s", c.Backend.Timeout)
	}

	_, portStr, err := net.SplitHostPort(c.Server.Addr)
	if err != nil {
		return fmt.Errorf("server.addr %q: %w", c.Server.Addr, err)
	}
	if port, err := strconv.Atoi(portStr); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("server.addr port must be between 1 and 65535, got %q", portStr)
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}

	if _, err := controller.ParseTab(c.UI.InitialTab); err != nil {
		return fmt.Errorf("ui.initial_tab: %w", err)
	}
	if c.UI.MaxResults <= 0 {
		return fmt.Errorf("ui.max_results must be positive, got %d", c.UI.MaxResults)
	}
	return nil
}

// InitialTab returns the parsed ui.initial_tab. Call after Validate.
func (c *Config) InitialTab() controller.Tab {
	tab, _ := controller.ParseTab(c.UI.InitialTab)
	return tab
}

// findConfigPath returns the first DefaultFile found, or "".
func findConfigPath() string {
	for _, p := range []string{DefaultFile, filepath.Join("config", DefaultFile)} {
		if fileExists(p) {
			return p
		}
	}
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
