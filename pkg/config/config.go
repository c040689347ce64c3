package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Solidity       SolidityConfig           `yaml:"solidity"`
	DefaultNetwork string                   `yaml:"default_network" default:"goerli" validate:"required"`
	Networks       map[string]NetworkConfig `yaml:"networks" validate:"required,min=1,dive"`
	SecretsFile    string                   `yaml:"secrets_file" default:"secrets.json"`
	Contract       ContractConfig           `yaml:"contract"`
	Probe          ProbeConfig              `yaml:"probe"`
	Server         ServerConfig             `yaml:"server"`
	Logging        LoggingConfig            `yaml:"logging"`
}

// SolidityConfig contains compiler settings
type SolidityConfig struct {
	Version   string `yaml:"version" default:"0.8.9" validate:"required"`
	Compiler  string `yaml:"compiler" default:"solc"`
	Sources   string `yaml:"sources" default:"contracts"`
	Artifacts string `yaml:"artifacts" default:"artifacts"`
	Optimize  bool   `yaml:"optimize"`
	Runs      int    `yaml:"runs" default:"200" validate:"gte=0"`
}

// NetworkConfig describes a remote JSON-RPC endpoint. URL may contain
// ${name} placeholders that are filled from the secrets file.
type NetworkConfig struct {
	URL         string   `yaml:"url" validate:"required"`
	ChainID     int64    `yaml:"chain_id" validate:"gte=0"`
	GasLimit    uint64   `yaml:"gas_limit"`
	MaxGasPrice string   `yaml:"max_gas_price" validate:"omitempty,numeric"`
	Accounts    []string `yaml:"accounts"`
}

// ContractConfig identifies the deployed Generator contract
type ContractConfig struct {
	Name    string `yaml:"name" default:"Generator" validate:"required"`
	Address string `yaml:"address" validate:"omitempty,eth_addr"`
}

// ProbeConfig contains read-call settings. A zero CallTimeout leaves calls unbounded.
type ProbeConfig struct {
	CallTimeout time.Duration `yaml:"call_timeout" validate:"gte=0"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// Load loads configuration from a YAML file, applies defaults and validates it.
// Secrets are not resolved here; see ResolveNetwork.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes, defaults and validates raw YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}
	if _, ok := cfg.Networks[cfg.DefaultNetwork]; !ok {
		return fmt.Errorf("default_network %q is not defined in networks", cfg.DefaultNetwork)
	}
	return nil
}
