// Package deploy publishes compiled contracts to the configured network.
package deploy

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/chainsafe/generator-dapp/internal/metrics"
	"github.com/chainsafe/generator-dapp/pkg/artifact"
	"github.com/chainsafe/generator-dapp/pkg/ethereum"
	"github.com/chainsafe/generator-dapp/pkg/wallet"
)

// Chain is the subset of the Ethereum client used for deployments.
type Chain interface {
	ChainID() *big.Int
	Backend() bind.ContractBackend
	PrepareTransactor(ctx context.Context, auth *bind.TransactOpts) error
	WaitDeployed(ctx context.Context, tx *types.Transaction) (common.Address, *types.Receipt, error)
}

// Deployer sends contract creation transactions signed by the wallet's
// selected account.
type Deployer struct {
	chain        Chain
	wallet       wallet.Provider
	artifactsDir string
	network      string
	logger       *zap.Logger
	now          func() time.Time
}

// NewDeployer creates a Deployer.
func NewDeployer(chain Chain, w wallet.Provider, artifactsDir, network string, logger *zap.Logger) *Deployer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Deployer{
		chain:        chain,
		wallet:       w,
		artifactsDir: artifactsDir,
		network:      network,
		logger:       logger,
		now:          time.Now,
	}
}

// Deploy loads the named artifact, deploys it with the given constructor
// arguments and waits until the contract is mined.
func (d *Deployer) Deploy(ctx context.Context, name string, args ...interface{}) (dep *ethereum.Deployment, err error) {
	defer func() {
		status := "success"
		if err != nil {
			status = "failed"
		}
		metrics.DeploymentsTotal.WithLabelValues(name, status).Inc()
	}()

	art, err := artifact.Load(d.artifactsDir, name)
	if err != nil {
		return nil, err
	}
	parsed, err := art.ParsedABI()
	if err != nil {
		return nil, err
	}
	code, err := art.CreationCode()
	if err != nil {
		return nil, err
	}

	if _, err := d.wallet.RequestAccounts(ctx); err != nil {
		return nil, fmt.Errorf("request accounts: %w", err)
	}
	signer, err := d.wallet.Signer(ctx)
	if err != nil {
		return nil, fmt.Errorf("get signer: %w", err)
	}
	auth, err := signer.TransactOpts(ctx, d.chain.ChainID())
	if err != nil {
		return nil, err
	}
	if err := d.chain.PrepareTransactor(ctx, auth); err != nil {
		return nil, err
	}

	d.logger.Info("Deploying contract",
		zap.String("contract", art.ContractName),
		zap.String("network", d.network),
		zap.String("deployer", signer.Address.Hex()))

	_, tx, _, err := bind.DeployContract(auth, parsed, code, d.chain.Backend(), args...)
	if err != nil {
		return nil, fmt.Errorf("deploy %s: %w", art.ContractName, err)
	}

	d.logger.Info("Deployment transaction sent", zap.String("tx_hash", tx.Hash().Hex()))

	addr, receipt, err := d.chain.WaitDeployed(ctx, tx)
	if err != nil {
		return nil, err
	}

	dep = &ethereum.Deployment{
		Contract:    art.ContractName,
		Network:     d.network,
		Address:     addr,
		TxHash:      tx.Hash(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		DeployedAt:  d.now().UTC(),
	}

	d.logger.Info("Contract deployed",
		zap.String("contract", dep.Contract),
		zap.String("address", dep.Address.Hex()),
		zap.Uint64("block_number", dep.BlockNumber))

	return dep, nil
}
