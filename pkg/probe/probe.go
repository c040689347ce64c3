// Package probe implements the fire-and-forget getHash diagnostic.
//
// A probe never returns a value or an error to its caller. Every failure is
// reduced to a single error log entry; a recorded solution is reported as a
// single info entry; an empty record or a missing wallet produces no output.
package probe

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/generator-dapp/internal/metrics"
	"github.com/chainsafe/generator-dapp/pkg/generator"
	"github.com/chainsafe/generator-dapp/pkg/wallet"
)

// Prober runs getHash probes through an optional wallet provider.
type Prober struct {
	reader      *generator.Reader
	provider    wallet.Provider
	logger      *zap.Logger
	callTimeout time.Duration

	wg sync.WaitGroup
}

// Option configures a Prober.
type Option func(*Prober)

// WithCallTimeout bounds each probe. Zero disables the bound.
func WithCallTimeout(d time.Duration) Option {
	return func(p *Prober) { p.callTimeout = d }
}

// New creates a Prober. A nil provider makes every probe a silent no-op.
func New(reader *generator.Reader, provider wallet.Provider, logger *zap.Logger, opts ...Option) *Prober {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Prober{
		reader:   reader,
		provider: provider,
		logger:   logger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Probe looks up the solution for id and logs it if one is recorded.
func (p *Prober) Probe(ctx context.Context, id string) {
	start := time.Now()
	outcome := metrics.OutcomeError
	defer func() {
		metrics.ProbesTotal.WithLabelValues(outcome).Inc()
		metrics.ProbeDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	}()

	if p.provider == nil {
		outcome = metrics.OutcomeNoWallet
		return
	}

	if p.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.callTimeout)
		defer cancel()
	}

	probeID := uuid.NewString()
	defer func() {
		if r := recover(); r != nil {
			outcome = metrics.OutcomeError
			p.logger.Error("getHash probe panicked",
				zap.String("probe_id", probeID),
				zap.String("instance_id", id),
				zap.Any("panic", r))
		}
	}()

	sol, err := p.reader.GetHash(ctx, p.provider, id)
	if errors.Is(err, generator.ErrNoProvider) {
		outcome = metrics.OutcomeNoWallet
		return
	}
	if err != nil {
		p.logger.Error("getHash probe failed",
			zap.String("probe_id", probeID),
			zap.String("instance_id", id),
			zap.String("contract", p.reader.Address().Hex()),
			zap.Error(err))
		return
	}

	if !sol.Recorded() {
		outcome = metrics.OutcomeEmpty
		return
	}

	outcome = metrics.OutcomeFound
	p.logger.Info("Solution information for instance",
		zap.String("instance_id", id),
		zap.String("solution_hash", sol.SolutionHash),
		zap.String("algorithm_hash", sol.AlgorithmHash),
		zap.String("hash_method", sol.HashMethod))
}

// Go runs Probe on its own goroutine and returns immediately.
func (p *Prober) Go(ctx context.Context, id string) {
	p.wg.Add(1)
	metrics.ProbesInFlight.Inc()
	go func() {
		defer p.wg.Done()
		defer metrics.ProbesInFlight.Dec()
		p.Probe(ctx, id)
	}()
}

// Wait blocks until all probes started with Go have finished.
func (p *Prober) Wait() {
	p.wg.Wait()
}
