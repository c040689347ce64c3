package probe

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chainsafe/generator-dapp/pkg/ethereum/ethtest"
	"github.com/chainsafe/generator-dapp/pkg/generator"
)

var (
	contractAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	accountAddr  = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
)

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func newTestProber(t *testing.T) (*Prober, *ethtest.GeneratorCaller, *ethtest.Provider, *observer.ObservedLogs) {
	t.Helper()
	logger, logs := newObservedLogger()
	caller := ethtest.NewGeneratorCaller()
	provider := &ethtest.Provider{Account: accountAddr, Caller: caller}
	return New(generator.NewReader(contractAddr), provider, logger), caller, provider, logs
}

// fieldKeys returns the context keys of an entry in order.
func fieldKeys(e observer.LoggedEntry) []string {
	keys := make([]string, 0, len(e.Context))
	for _, f := range e.Context {
		keys = append(keys, f.Key)
	}
	return keys
}

func TestProbe_RecordedSolutionLogsOnce(t *testing.T) {
	p, caller, _, logs := newTestProber(t)
	caller.Set(big.NewInt(12), ethtest.Record{SolutionHash: "0xaaa", AlgorithmHash: "0xbbb", HashMethod: "sha256"})

	p.Probe(context.Background(), "12")

	entries := logs.All()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, zapcore.InfoLevel, e.Level)
	assert.Equal(t, []string{"instance_id", "solution_hash", "algorithm_hash", "hash_method"}, fieldKeys(e))

	fields := e.ContextMap()
	assert.Equal(t, "12", fields["instance_id"])
	assert.Equal(t, "0xaaa", fields["solution_hash"])
	assert.Equal(t, "0xbbb", fields["algorithm_hash"])
	assert.Equal(t, "sha256", fields["hash_method"])
}

func TestProbe_EmptySolutionLogsNothing(t *testing.T) {
	p, caller, _, logs := newTestProber(t)
	caller.Set(big.NewInt(1), ethtest.Record{SolutionHash: "", AlgorithmHash: "0xbbb", HashMethod: "sha256"})

	p.Probe(context.Background(), "1")
	p.Probe(context.Background(), "404")

	assert.Zero(t, logs.Len())
}

func TestProbe_NoProviderIsSilent(t *testing.T) {
	logger, logs := newObservedLogger()
	p := New(generator.NewReader(contractAddr), nil, logger)

	for _, id := range []string{"1", "", "garbage", "-5"} {
		assert.NotPanics(t, func() { p.Probe(context.Background(), id) })
	}
	assert.Zero(t, logs.Len())
}

func TestProbe_RemoteErrorLogsExactlyOnce(t *testing.T) {
	p, caller, _, logs := newTestProber(t)
	caller.Err = errors.New("execution reverted")

	assert.NotPanics(t, func() { p.Probe(context.Background(), "3") })

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Contains(t, entries[0].ContextMap()["error"], "execution reverted")
}

func TestProbe_AuthorizationRefusedLogsError(t *testing.T) {
	p, _, provider, logs := newTestProber(t)
	provider.RequestAccountsFunc = func(context.Context) ([]common.Address, error) {
		return nil, errors.New("user rejected the request")
	}

	p.Probe(context.Background(), "3")

	require.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	assert.Equal(t, 1, logs.Len())
}

func TestProbe_MalformedIDLogsError(t *testing.T) {
	p, caller, _, logs := newTestProber(t)

	p.Probe(context.Background(), "0xzz")

	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	assert.Empty(t, caller.Calls())
}

func TestProbe_IsIdempotent(t *testing.T) {
	p, caller, provider, logs := newTestProber(t)
	caller.Set(big.NewInt(8), ethtest.Record{SolutionHash: "s", AlgorithmHash: "a", HashMethod: "m"})

	p.Probe(context.Background(), "8")
	p.Probe(context.Background(), "8")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, entries[0].Message, entries[1].Message)
	assert.Equal(t, entries[0].Context, entries[1].Context)
	assert.Equal(t, int64(2), provider.Requests())
}

func TestProbe_CallTimeout(t *testing.T) {
	logger, logs := newObservedLogger()
	provider := &ethtest.Provider{
		Account: accountAddr,
		Caller:  ethtest.NewGeneratorCaller(),
		RequestAccountsFunc: func(ctx context.Context) ([]common.Address, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	p := New(generator.NewReader(contractAddr), provider, logger, WithCallTimeout(10*time.Millisecond))

	p.Probe(context.Background(), "1")

	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].ContextMap()["error"], context.DeadlineExceeded.Error())
}

func TestGo_RunsIndependentProbes(t *testing.T) {
	p, caller, _, logs := newTestProber(t)
	for i := int64(1); i <= 10; i++ {
		caller.Set(big.NewInt(i), ethtest.Record{SolutionHash: "s", AlgorithmHash: "a", HashMethod: "m"})
	}

	for i := 1; i <= 10; i++ {
		p.Go(context.Background(), big.NewInt(int64(i)).String())
	}
	p.Wait()

	assert.Equal(t, 10, logs.FilterMessage("Solution information for instance").Len())
	assert.Len(t, caller.Calls(), 10)
}
