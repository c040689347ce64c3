package wallet

import (
	"context"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newHexKey(t *testing.T) (string, string) {
	t.Helper()
	k, err := crypto.GenerateKey()
	require.NoError(t, err)
	return hex.EncodeToString(crypto.FromECDSA(k)), crypto.PubkeyToAddress(k.PublicKey).Hex()
}

func TestKeyedWallet_RequestAccountsIsIdempotent(t *testing.T) {
	key, addr := newHexKey(t)
	w, err := NewKeyedWallet(nil, []string{key}, zap.NewNop())
	require.NoError(t, err)

	ctx := context.Background()
	first, err := w.RequestAccounts(ctx)
	require.NoError(t, err)
	second, err := w.RequestAccounts(ctx)
	require.NoError(t, err)

	require.Len(t, first, 1)
	assert.Equal(t, addr, first[0].Hex())
	assert.Equal(t, first, second)
}

func TestKeyedWallet_SignerRequiresAuthorization(t *testing.T) {
	key, addr := newHexKey(t)
	w, err := NewKeyedWallet(nil, []string{key}, nil)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = w.Signer(ctx)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = w.RequestAccounts(ctx)
	require.NoError(t, err)

	signer, err := w.Signer(ctx)
	require.NoError(t, err)
	assert.Equal(t, addr, signer.Address.Hex())

	opts := signer.CallOpts(ctx)
	assert.Equal(t, signer.Address, opts.From)

	auth, err := signer.TransactOpts(ctx, big.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, signer.Address, auth.From)
}

func TestKeyedWallet_NoKeys(t *testing.T) {
	w, err := NewKeyedWallet(nil, nil, nil)
	require.NoError(t, err)

	_, err = w.RequestAccounts(context.Background())
	assert.ErrorIs(t, err, ErrNoAccounts)
}

func TestKeyedWallet_InvalidKey(t *testing.T) {
	_, err := NewKeyedWallet(nil, []string{"zz"}, nil)
	assert.Error(t, err)
}

func TestKeyedWallet_CanceledContext(t *testing.T) {
	key, _ := newHexKey(t)
	w, err := NewKeyedWallet(nil, []string{key}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = w.RequestAccounts(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
