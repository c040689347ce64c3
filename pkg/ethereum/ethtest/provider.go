package ethtest

import (
	"context"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/generator-dapp/pkg/wallet"
)

// Provider is a wallet.Provider whose behaviour can be overridden per method.
// Without overrides it authorizes Account and routes calls to Caller.
type Provider struct {
	Account common.Address
	Caller  bind.ContractCaller

	RequestAccountsFunc func(ctx context.Context) ([]common.Address, error)
	SignerFunc          func(ctx context.Context) (*wallet.Signer, error)

	requests atomic.Int64
}

var _ wallet.Provider = (*Provider)(nil)

// RequestAccounts implements wallet.Provider.
func (p *Provider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	p.requests.Add(1)
	if p.RequestAccountsFunc != nil {
		return p.RequestAccountsFunc(ctx)
	}
	return []common.Address{p.Account}, nil
}

// Signer implements wallet.Provider.
func (p *Provider) Signer(ctx context.Context) (*wallet.Signer, error) {
	if p.SignerFunc != nil {
		return p.SignerFunc(ctx)
	}
	return &wallet.Signer{Address: p.Account}, nil
}

// Backend implements wallet.Provider.
func (p *Provider) Backend() bind.ContractCaller {
	return p.Caller
}

// Requests returns how many times RequestAccounts was called.
func (p *Provider) Requests() int64 {
	return p.requests.Load()
}
