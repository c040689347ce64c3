// Package generator reads solution metadata from the Generator contract.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	apperrors "github.com/chainsafe/generator-dapp/pkg/app/errors"
	"github.com/chainsafe/generator-dapp/pkg/ethereum/contracts"
	"github.com/chainsafe/generator-dapp/pkg/wallet"
)

// ErrNoProvider is returned when no wallet provider is available.
var ErrNoProvider = errors.New("no wallet provider available")

// ErrNoSolution is returned by Lookup when the record's solution hash is empty.
var ErrNoSolution = errors.New("no solution recorded")

// Solution is the triple stored on chain for an instance.
type Solution struct {
	InstanceID    string `json:"instance_id"`
	SolutionHash  string `json:"solution_hash"`
	AlgorithmHash string `json:"algorithm_hash"`
	HashMethod    string `json:"hash_method"`
}

// Recorded reports whether a solution has been stored. An empty solution
// hash is the contract's sentinel for "nothing yet".
func (s Solution) Recorded() bool {
	return s.SolutionHash != ""
}

// ParseInstanceID parses a decimal or 0x-prefixed hex identifier into a uint256 value.
func ParseInstanceID(id string) (*big.Int, error) {
	s := strings.TrimSpace(id)
	if s == "" {
		return nil, fmt.Errorf("empty instance id")
	}

	if strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("negative instance id %q", id)
	}

	// Plain decimal or 0x hex only. Leading zeros stay decimal.
	digits, base := s, 10
	if rest, ok := cutHexPrefix(s); ok {
		digits, base = rest, 16
	}
	if digits == "" || strings.ContainsAny(digits, "+-_") {
		return nil, fmt.Errorf("malformed instance id %q", id)
	}

	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("malformed instance id %q", id)
	}
	if v.BitLen() > 256 {
		return nil, fmt.Errorf("instance id %q exceeds uint256", id)
	}
	return v, nil
}

func cutHexPrefix(s string) (string, bool) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:], true
	}
	return s, false
}

// Reader performs getHash calls against a fixed contract address.
type Reader struct {
	address common.Address
}

// NewReader binds a Reader to the deployed contract address.
func NewReader(address common.Address) *Reader {
	return &Reader{address: address}
}

// Address returns the contract address the reader is bound to.
func (r *Reader) Address() common.Address {
	return r.address
}

// GetHash authorizes the wallet, builds a contract client and calls getHash
// through the current signer. Empty records are returned without error.
func (r *Reader) GetHash(ctx context.Context, provider wallet.Provider, id string) (Solution, error) {
	if provider == nil {
		return Solution{}, apperrors.UnavailableError(ErrNoProvider, "wallet provider unavailable")
	}

	if _, err := provider.RequestAccounts(ctx); err != nil {
		return Solution{}, apperrors.DependencyError(fmt.Errorf("request accounts: %w", err), "wallet authorization failed")
	}

	instanceID, err := ParseInstanceID(id)
	if err != nil {
		return Solution{}, apperrors.BadRequestError(err, "invalid instance id")
	}

	caller, err := contracts.NewGeneratorCaller(r.address, provider.Backend())
	if err != nil {
		return Solution{}, apperrors.GeneralError(fmt.Errorf("bind generator contract: %w", err))
	}

	signer, err := provider.Signer(ctx)
	if err != nil {
		return Solution{}, apperrors.DependencyError(fmt.Errorf("get signer: %w", err), "wallet signer unavailable")
	}

	out, err := caller.GetHash(signer.CallOpts(ctx), instanceID)
	if err != nil {
		return Solution{}, apperrors.DependencyError(fmt.Errorf("call getHash(%s): %w", instanceID, err), "contract call failed")
	}

	return Solution{
		InstanceID:    id,
		SolutionHash:  out.SolutionHash,
		AlgorithmHash: out.AlgorithmHash,
		HashMethod:    out.HashMethod,
	}, nil
}

// Lookup is GetHash for callers that want a missing record as an error.
func (r *Reader) Lookup(ctx context.Context, provider wallet.Provider, id string) (Solution, error) {
	sol, err := r.GetHash(ctx, provider, id)
	if err != nil {
		return Solution{}, err
	}
	if !sol.Recorded() {
		return Solution{}, apperrors.ResourceNotFoundError(ErrNoSolution, "no solution recorded for instance")
	}
	return sol, nil
}
