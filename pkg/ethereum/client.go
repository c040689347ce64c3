package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/chainsafe/generator-dapp/pkg/config"
)

// Client represents an Ethereum JSON-RPC client for one configured network
type Client struct {
	network *config.Network
	client  *ethclient.Client
	chainID *big.Int
	logger  *zap.Logger
}

// NewClient dials the network and resolves its chain id
func NewClient(ctx context.Context, network *config.Network, logger *zap.Logger) (*Client, error) {
	client, err := ethclient.DialContext(ctx, network.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}

	chainID := big.NewInt(network.ChainID)
	if network.ChainID == 0 {
		chainID, err = client.ChainID(ctx)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to get chain id: %w", err)
		}
	}

	logger.Info("Connected to Ethereum",
		zap.String("network", network.Name),
		zap.String("chain_id", chainID.String()))

	return &Client{
		network: network,
		client:  client,
		chainID: chainID,
		logger:  logger,
	}, nil
}

// Close closes the underlying RPC connection
func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// ChainID returns the resolved chain id
func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// Backend exposes the RPC client as a contract backend
func (c *Client) Backend() bind.ContractBackend {
	return c.client
}

// Balance returns the latest balance of addr in wei
func (c *Client) Balance(ctx context.Context, addr common.Address) (*big.Int, error) {
	bal, err := c.client.BalanceAt(ctx, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance of %s: %w", addr.Hex(), err)
	}
	return bal, nil
}

// PrepareTransactor fills nonce, gas limit and a capped gas price into auth
func (c *Client) PrepareTransactor(ctx context.Context, auth *bind.TransactOpts) error {
	nonce, err := c.client.PendingNonceAt(ctx, auth.From)
	if err != nil {
		return fmt.Errorf("failed to get nonce: %w", err)
	}
	auth.Nonce = new(big.Int).SetUint64(nonce)
	auth.GasLimit = c.network.GasLimit

	if c.network.MaxGasPrice == "" {
		return nil
	}

	maxGasPrice, ok := new(big.Int).SetString(c.network.MaxGasPrice, 10)
	if !ok {
		return fmt.Errorf("invalid max gas price %q", c.network.MaxGasPrice)
	}

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return fmt.Errorf("failed to suggest gas price: %w", err)
	}

	if gasPrice.Cmp(maxGasPrice) > 0 {
		c.logger.Warn("Suggested gas price exceeds maximum",
			zap.String("suggested", gasPrice.String()),
			zap.String("max", maxGasPrice.String()))
		auth.GasPrice = maxGasPrice
	} else {
		auth.GasPrice = gasPrice
	}
	return nil
}

// WaitDeployed blocks until the creation transaction is mined and code exists at the address
func (c *Client) WaitDeployed(ctx context.Context, tx *types.Transaction) (common.Address, *types.Receipt, error) {
	addr, err := bind.WaitDeployed(ctx, c.client, tx)
	if err != nil {
		return common.Address{}, nil, fmt.Errorf("wait deployed %s: %w", tx.Hash().Hex(), err)
	}
	receipt, err := c.client.TransactionReceipt(ctx, tx.Hash())
	if err != nil {
		return common.Address{}, nil, fmt.Errorf("get receipt %s: %w", tx.Hash().Hex(), err)
	}
	return addr, receipt, nil
}
