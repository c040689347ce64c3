package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/generator-dapp/pkg/config"
	"github.com/chainsafe/generator-dapp/pkg/ethereum"
	"github.com/chainsafe/generator-dapp/pkg/wallet"
)

// Env bundles what every command needs: configuration, the resolved
// network and a logger. Chain access is opened lazily with Connect.
type Env struct {
	Config  *config.Config
	Network *config.Network
	Logger  *zap.Logger
}

// LoadEnv loads the config file and secrets and resolves networkName
// (empty selects the default network).
func LoadEnv(configPath, networkName string) (*Env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	secrets, err := config.LoadSecrets(cfg.SecretsFile)
	if err != nil {
		return nil, err
	}

	network, err := cfg.ResolveNetwork(networkName, secrets)
	if err != nil {
		return nil, err
	}

	return &Env{Config: cfg, Network: network, Logger: logger}, nil
}

// HasAccount reports whether the resolved network has a signing key.
func (e *Env) HasAccount() bool {
	_, err := e.Network.PrimaryKey()
	return err == nil
}

// Chain is an open connection plus the wallet built on top of it.
type Chain struct {
	Client *ethereum.Client
	Wallet *wallet.KeyedWallet
}

// Close releases the RPC connection.
func (c *Chain) Close() {
	c.Client.Close()
}

// Provider returns the wallet as a Provider, or nil when no account key is
// configured so that probes degrade to silent no-ops.
func (c *Chain) Provider() wallet.Provider {
	if c.Wallet == nil || len(c.Wallet.Addresses()) == 0 {
		return nil
	}
	return c.Wallet
}

// Connect dials the resolved network and builds the keyed wallet.
func (e *Env) Connect(ctx context.Context) (*Chain, error) {
	client, err := ethereum.NewClient(ctx, e.Network, e.Logger)
	if err != nil {
		return nil, err
	}

	w, err := wallet.NewKeyedWallet(client.Backend(), e.Network.AccountKeys, e.Logger)
	if err != nil {
		client.Close()
		return nil, err
	}

	if !e.HasAccount() {
		e.Logger.Warn("No account key configured, wallet features are disabled",
			zap.String("network", e.Network.Name),
			zap.Error(config.ErrNoAccount))
	}

	return &Chain{Client: client, Wallet: w}, nil
}

// ErrNoContractAddress is returned when an operation needs the deployed
// contract address and none is configured.
var ErrNoContractAddress = errors.New("contract.address is not configured")

// ContractAddress returns the configured Generator address.
func (e *Env) ContractAddress() (common.Address, error) {
	if e.Config.Contract.Address == "" {
		return common.Address{}, ErrNoContractAddress
	}
	return common.HexToAddress(e.Config.Contract.Address), nil
}
