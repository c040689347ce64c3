package generator

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chainsafe/generator-dapp/pkg/app/errors"
	"github.com/chainsafe/generator-dapp/pkg/ethereum/ethtest"
	"github.com/chainsafe/generator-dapp/pkg/wallet"
)

var (
	contractAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	accountAddr  = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
)

func TestParseInstanceID(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "0", want: "0"},
		{in: "42", want: "42"},
		{in: " 7 ", want: "7"},
		{in: "0x1f", want: "31"},
		{in: "0X1F", want: "31"},
		{in: "017", want: "17"},
		{in: "0b1", wantErr: true},
		{in: "0o17", wantErr: true},
		{in: "1_000", wantErr: true},
		{in: "0x_1f", wantErr: true},
		{in: "+5", wantErr: true},
		{in: "0x", wantErr: true},
		{in: "0x-1", wantErr: true},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "0x10000000000000000000000000000000000000000000000000000000000000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInstanceID(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func newProvider() (*ethtest.Provider, *ethtest.GeneratorCaller) {
	caller := ethtest.NewGeneratorCaller()
	return &ethtest.Provider{Account: accountAddr, Caller: caller}, caller
}

func TestReader_GetHash(t *testing.T) {
	provider, caller := newProvider()
	caller.Set(big.NewInt(3), ethtest.Record{SolutionHash: "s", AlgorithmHash: "a", HashMethod: "keccak256"})

	sol, err := NewReader(contractAddr).GetHash(context.Background(), provider, "3")
	require.NoError(t, err)
	assert.Equal(t, Solution{InstanceID: "3", SolutionHash: "s", AlgorithmHash: "a", HashMethod: "keccak256"}, sol)
	assert.True(t, sol.Recorded())
	assert.Equal(t, int64(1), provider.Requests())

	calls := caller.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, accountAddr, calls[0].From)
}

func TestReader_GetHash_EmptyRecord(t *testing.T) {
	provider, _ := newProvider()

	sol, err := NewReader(contractAddr).GetHash(context.Background(), provider, "5")
	require.NoError(t, err)
	assert.False(t, sol.Recorded())
}

func TestReader_GetHash_Errors(t *testing.T) {
	ctx := context.Background()
	reader := NewReader(contractAddr)

	_, err := reader.GetHash(ctx, nil, "1")
	assert.ErrorIs(t, err, ErrNoProvider)
	assert.True(t, apperrors.Is(err, apperrors.CategoryUnavailable))

	provider, _ := newProvider()
	_, err = reader.GetHash(ctx, provider, "not-a-number")
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))

	provider.RequestAccountsFunc = func(context.Context) ([]common.Address, error) {
		return nil, errors.New("user rejected the request")
	}
	_, err = reader.GetHash(ctx, provider, "1")
	assert.True(t, apperrors.Is(err, apperrors.CategoryDependencyFailure))
	assert.ErrorContains(t, err, "user rejected")

	provider, _ = newProvider()
	provider.SignerFunc = func(context.Context) (*wallet.Signer, error) {
		return nil, wallet.ErrNotAuthorized
	}
	_, err = reader.GetHash(ctx, provider, "1")
	assert.ErrorIs(t, err, wallet.ErrNotAuthorized)

	provider, caller := newProvider()
	caller.Err = errors.New("dial tcp: connection refused")
	_, err = reader.GetHash(ctx, provider, "1")
	assert.True(t, apperrors.Is(err, apperrors.CategoryDependencyFailure))
}

func TestReader_Lookup(t *testing.T) {
	provider, caller := newProvider()
	caller.Set(big.NewInt(1), ethtest.Record{SolutionHash: "s", AlgorithmHash: "a", HashMethod: "m"})
	reader := NewReader(contractAddr)

	sol, err := reader.Lookup(context.Background(), provider, "1")
	require.NoError(t, err)
	assert.Equal(t, "s", sol.SolutionHash)

	_, err = reader.Lookup(context.Background(), provider, "2")
	assert.ErrorIs(t, err, ErrNoSolution)
	assert.True(t, apperrors.Is(err, apperrors.CategoryResourceNotFound))
}
