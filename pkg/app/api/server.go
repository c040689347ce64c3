// Package api implements app.Runner for the site server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/chainsafe/generator-dapp/pkg/app"
	apphttp "github.com/chainsafe/generator-dapp/pkg/app/http"
	"github.com/chainsafe/generator-dapp/pkg/generator"
	"github.com/chainsafe/generator-dapp/pkg/probe"
	"github.com/chainsafe/generator-dapp/pkg/site"
)

const defaultRequestTimeout = 60

// Server holds the environment to init the site server.
type Server struct {
	env *app.Env
}

var _ app.Runner = (*Server)(nil)

// NewServer initializes a new site server.
func NewServer(env *app.Env) *Server {
	return &Server{env: env}
}

// Run connects to the network, serves until ctx is canceled and then waits
// for in-flight probes.
func (s *Server) Run(ctx context.Context) error {
	if s.env == nil {
		return fmt.Errorf("site server environment is nil")
	}
	cfg := s.env.Config
	logger := s.env.Logger

	address, err := s.env.ContractAddress()
	if err != nil {
		return err
	}

	logger.Info("Starting site server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("network", s.env.Network.Name),
		zap.String("contract", address.Hex()),
	)

	chain, err := s.env.Connect(ctx)
	if err != nil {
		return err
	}
	defer chain.Close()

	provider := chain.Provider()
	reader := generator.NewReader(address)
	prober := probe.New(reader, provider, logger, probe.WithCallTimeout(cfg.Probe.CallTimeout))

	router := s.setupRouter(site.NewHandler(prober, reader, provider, logger))

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server, prober.Wait)
}

func (s *Server) setupRouter(h *site.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Second * defaultRequestTimeout))

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	site.RegisterRoutes(r, h)

	return r
}
