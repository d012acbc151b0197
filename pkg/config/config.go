package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/entitykit/config"
	ConfigFileName    = "entitykit.yml"
)

// ValidLogLevels is the list of accepted log_level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Config holds all EntityKit configuration settings
type Config struct {
	// DatabaseURL is the connection string for the entity database
	DatabaseURL string `yaml:"database_url" json:"database_url"`

	// AuditDatabaseURL is the connection string for the audit trail database
	AuditDatabaseURL string `yaml:"audit_database_url" json:"audit_database_url"`

	// Host is the address the HTTP server binds to
	Host string `yaml:"host" json:"host"`

	// Port is the HTTP server listen port
	Port int `yaml:"port" json:"port"`

	// APITokenSecret signs and verifies API bearer tokens
	APITokenSecret string `yaml:"api_token_secret" json:"api_token_secret"`

	// LogLevel is the logging verbosity
	LogLevel string `yaml:"log_level" json:"log_level"`

	// AutoTimestamps enables created-at/updated-at stamping on writes
	AutoTimestamps bool `yaml:"auto_timestamps" json:"auto_timestamps"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		Host:           "0.0.0.0",
		Port:           8080,
		LogLevel:       "info",
		AutoTimestamps: true,
		sources:        make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	// Initialize all sources as "default"
	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("ENTITYKIT_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig, data)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"database_url", "audit_database_url", "host", "port",
		"api_token_secret", "log_level", "auto_timestamps",
	}
}

func (c *Config) applyFileConfig(file *Config, raw []byte) {
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
		c.sources["database_url"] = "file"
	}
	if file.AuditDatabaseURL != "" {
		c.AuditDatabaseURL = file.AuditDatabaseURL
		c.sources["audit_database_url"] = "file"
	}
	if file.Host != "" {
		c.Host = file.Host
		c.sources["host"] = "file"
	}
	if file.Port != 0 {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.APITokenSecret != "" {
		c.APITokenSecret = file.APITokenSecret
		c.sources["api_token_secret"] = "file"
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
		c.sources["log_level"] = "file"
	}
	// A boolean zero value is indistinguishable from an explicit false,
	// so check the raw document for the key.
	if keyPresent(raw, "auto_timestamps") {
		c.AutoTimestamps = file.AutoTimestamps
		c.sources["auto_timestamps"] = "file"
	}
}

func keyPresent(raw []byte, key string) bool {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return false
	}
	_, ok := doc[key]
	return ok
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}
	if val := os.Getenv("ENTITYKIT_DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}
	if val := os.Getenv("ENTITYKIT_AUDIT_DATABASE_URL"); val != "" {
		c.AuditDatabaseURL = val
		c.sources["audit_database_url"] = "environment"
	}
	if val := os.Getenv("ENTITYKIT_HOST"); val != "" {
		c.Host = val
		c.sources["host"] = "environment"
	}
	if val := os.Getenv("ENTITYKIT_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Port = i
			c.sources["port"] = "environment"
		}
	}
	if val := os.Getenv("ENTITYKIT_API_TOKEN_SECRET"); val != "" {
		c.APITokenSecret = val
		c.sources["api_token_secret"] = "environment"
	}
	if val := os.Getenv("ENTITYKIT_LOG_LEVEL"); val != "" {
		c.LogLevel = val
		c.sources["log_level"] = "environment"
	}
	if val := os.Getenv("ENTITYKIT_AUTO_TIMESTAMPS"); val != "" {
		c.AutoTimestamps = val == "true" || val == "1"
		c.sources["auto_timestamps"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Addr returns the host:port pair the server listens on
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	valid := false
	for _, l := range ValidLogLevels {
		if c.LogLevel == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "database_url", Value: redact(c.DatabaseURL), Source: c.Source("database_url")},
		{Name: "audit_database_url", Value: redact(c.AuditDatabaseURL), Source: c.Source("audit_database_url")},
		{Name: "host", Value: c.Host, Source: c.Source("host")},
		{Name: "port", Value: strconv.Itoa(c.Port), Source: c.Source("port")},
		{Name: "api_token_secret", Value: redact(c.APITokenSecret), Source: c.Source("api_token_secret")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
		{Name: "auto_timestamps", Value: strconv.FormatBool(c.AutoTimestamps), Source: c.Source("auto_timestamps")},
	}
}

// redact hides secret values while still showing whether they are set
func redact(s string) string {
	if s == "" {
		return ""
	}
	return "*****"
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-25s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-25s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-25s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
