package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Secrets holds credentials that live outside the config file.
// The file is expected to be gitignored.
type Secrets struct {
	ProjectID  string `json:"projectId"`
	AccountKey string `json:"account_key"`
}

// ErrNoAccount is returned when neither the network nor the secrets file
// provides an account key.
var ErrNoAccount = errors.New("no account key configured")

// LoadSecrets reads the secrets JSON file. A missing file yields empty secrets.
func LoadSecrets(path string) (*Secrets, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Secrets{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read secrets file: %w", err)
	}

	var s Secrets
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse secrets file %s: %w", path, err)
	}
	return &s, nil
}

// values exposes secrets for URL placeholder expansion.
func (s *Secrets) values() map[string]string {
	return map[string]string{
		"projectId":   s.ProjectID,
		"account_key": s.AccountKey,
	}
}

// Network is a fully resolved network: URL placeholders expanded and
// account keys normalized to bare hex.
type Network struct {
	Name        string
	URL         string
	ChainID     int64
	GasLimit    uint64
	MaxGasPrice string
	AccountKeys []string
}

// ResolveNetwork expands the named network (empty name means the default)
// against the given secrets.
func (c *Config) ResolveNetwork(name string, secrets *Secrets) (*Network, error) {
	if name == "" {
		name = c.DefaultNetwork
	}
	netCfg, ok := c.Networks[name]
	if !ok {
		return nil, fmt.Errorf("unknown network %q", name)
	}
	if secrets == nil {
		secrets = &Secrets{}
	}

	vals := secrets.values()
	var missing []string
	url := os.Expand(netCfg.URL, func(key string) string {
		v, ok := vals[key]
		if !ok || v == "" {
			missing = append(missing, key)
		}
		return v
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("network %q url references unset secrets: %s", name, strings.Join(missing, ", "))
	}

	keys := make([]string, 0, len(netCfg.Accounts)+1)
	for _, k := range netCfg.Accounts {
		keys = append(keys, normalizeKey(k))
	}
	if secrets.AccountKey != "" {
		keys = append(keys, normalizeKey(secrets.AccountKey))
	}

	return &Network{
		Name:        name,
		URL:         url,
		ChainID:     netCfg.ChainID,
		GasLimit:    netCfg.GasLimit,
		MaxGasPrice: netCfg.MaxGasPrice,
		AccountKeys: keys,
	}, nil
}

// PrimaryKey returns the first configured account key.
func (n *Network) PrimaryKey() (string, error) {
	if len(n.AccountKeys) == 0 {
		return "", ErrNoAccount
	}
	return n.AccountKeys[0], nil
}

func normalizeKey(k string) string {
	k = strings.TrimSpace(k)
	return strings.TrimPrefix(strings.TrimPrefix(k, "0x"), "0X")
}
