// Package wallet models the injected wallet capability: something that can
// authorize accounts, hand out a signer and route read calls to a node.
package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// ErrNoAccounts is returned when a wallet has no accounts to authorize.
var ErrNoAccounts = errors.New("wallet has no accounts")

// ErrNotAuthorized is returned by Signer before RequestAccounts succeeded.
var ErrNotAuthorized = errors.New("wallet accounts not authorized")

// Provider is the wallet capability consumed by the probe.
type Provider interface {
	// RequestAccounts asks the wallet for account access. It is idempotent:
	// once authorized, later calls return the same accounts immediately.
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	// Signer returns the currently selected account.
	Signer(ctx context.Context) (*Signer, error)
	// Backend routes read-only contract calls to the node.
	Backend() bind.ContractCaller
}

// Signer is an authorized account handle.
type Signer struct {
	Address common.Address
	key     *ecdsa.PrivateKey
}

// CallOpts returns read-call options issued from this signer.
func (s *Signer) CallOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{From: s.Address, Context: ctx}
}

// TransactOpts returns transaction options signed by this account.
func (s *Signer) TransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	if s.key == nil {
		return nil, fmt.Errorf("signer %s has no key", s.Address.Hex())
	}
	auth, err := bind.NewKeyedTransactorWithChainID(s.key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	auth.Context = ctx
	return auth, nil
}

// KeyedWallet is a Provider backed by raw private keys.
type KeyedWallet struct {
	backend bind.ContractCaller
	keys    []*ecdsa.PrivateKey
	logger  *zap.Logger

	mu         sync.Mutex
	authorized []common.Address
}

// NewKeyedWallet parses hex private keys (without 0x) into a wallet.
func NewKeyedWallet(backend bind.ContractCaller, hexKeys []string, logger *zap.Logger) (*KeyedWallet, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	keys := make([]*ecdsa.PrivateKey, 0, len(hexKeys))
	for i, hk := range hexKeys {
		k, err := crypto.HexToECDSA(hk)
		if err != nil {
			return nil, fmt.Errorf("failed to load private key #%d: %w", i, err)
		}
		keys = append(keys, k)
	}
	return &KeyedWallet{backend: backend, keys: keys, logger: logger}, nil
}

// Addresses lists the wallet's accounts without authorizing them.
func (w *KeyedWallet) Addresses() []common.Address {
	out := make([]common.Address, 0, len(w.keys))
	for _, k := range w.keys {
		out = append(out, crypto.PubkeyToAddress(k.PublicKey))
	}
	return out
}

// RequestAccounts implements Provider.
func (w *KeyedWallet) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.authorized == nil {
		if len(w.keys) == 0 {
			return nil, ErrNoAccounts
		}
		w.authorized = w.Addresses()
		w.logger.Debug("Wallet accounts authorized", zap.Int("accounts", len(w.authorized)))
	}

	out := make([]common.Address, len(w.authorized))
	copy(out, w.authorized)
	return out, nil
}

// Signer implements Provider. The first account is the selected one.
func (w *KeyedWallet) Signer(_ context.Context) (*Signer, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.authorized) == 0 {
		return nil, ErrNotAuthorized
	}
	return &Signer{Address: w.authorized[0], key: w.keys[0]}, nil
}

// Backend implements Provider.
func (w *KeyedWallet) Backend() bind.ContractCaller {
	return w.backend
}
