package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
solidity:
  version: "0.8.9"
networks:
  goerli:
    url: "https://eth-goerli.alchemyapi.io/v2/${projectId}"
    chain_id: 5
contract:
  address: "0x5FbDB2315678afecb367f032d93F642f64180aa3"
`

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "goerli", cfg.DefaultNetwork)
	assert.Equal(t, "secrets.json", cfg.SecretsFile)
	assert.Equal(t, "Generator", cfg.Contract.Name)
	assert.Equal(t, "solc", cfg.Solidity.Compiler)
	assert.Equal(t, "contracts", cfg.Solidity.Sources)
	assert.Equal(t, "artifacts", cfg.Solidity.Artifacts)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Zero(t, cfg.Probe.CallTimeout)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "no networks",
			yaml: "solidity:\n  version: \"0.8.9\"\n",
		},
		{
			name: "default network missing",
			yaml: "default_network: mainnet\nnetworks:\n  goerli:\n    url: http://localhost:8545\n",
		},
		{
			name: "bad contract address",
			yaml: "networks:\n  goerli:\n    url: http://localhost:8545\ncontract:\n  address: not-an-address\n",
		},
		{
			name: "bad log level",
			yaml: "networks:\n  goerli:\n    url: http://localhost:8545\nlogging:\n  level: loud\n",
		},
		{
			name: "network without url",
			yaml: "networks:\n  goerli:\n    chain_id: 5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cfg.Networks["goerli"].ChainID)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestResolveNetwork_ExpandsSecrets(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	net, err := cfg.ResolveNetwork("", &Secrets{ProjectID: "abc123", AccountKey: "0xdeadbeef"})
	require.NoError(t, err)

	assert.Equal(t, "goerli", net.Name)
	assert.Equal(t, "https://eth-goerli.alchemyapi.io/v2/abc123", net.URL)
	assert.Equal(t, []string{"deadbeef"}, net.AccountKeys)

	key, err := net.PrimaryKey()
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", key)
}

func TestResolveNetwork_MissingSecret(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	_, err = cfg.ResolveNetwork("goerli", &Secrets{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "projectId")

	_, err = cfg.ResolveNetwork("mainnet", &Secrets{ProjectID: "x"})
	assert.Error(t, err)
}

func TestResolveNetwork_NoAccount(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	net, err := cfg.ResolveNetwork("", &Secrets{ProjectID: "x"})
	require.NoError(t, err)

	_, err = net.PrimaryKey()
	assert.ErrorIs(t, err, ErrNoAccount)
}

func TestLoadSecrets(t *testing.T) {
	dir := t.TempDir()

	s, err := LoadSecrets(filepath.Join(dir, "absent.json"))
	require.NoError(t, err)
	assert.Empty(t, s.ProjectID)

	path := filepath.Join(dir, "secrets.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"projectId":"p","account_key":"k"}`), 0o600))
	s, err = LoadSecrets(path)
	require.NoError(t, err)
	assert.Equal(t, "p", s.ProjectID)
	assert.Equal(t, "k", s.AccountKey)

	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))
	_, err = LoadSecrets(path)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger(LoggingConfig{Level: "nope", Format: "json"})
	assert.Error(t, err)
}
