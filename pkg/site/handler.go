// Package site serves the FAQ pages and the small JSON API that fronts the
// Generator contract.
package site

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/generator-dapp/pkg/app/http"
	"github.com/chainsafe/generator-dapp/pkg/generator"
	"github.com/chainsafe/generator-dapp/pkg/wallet"
)

//go:embed templates/*.html
var templateFS embed.FS

var faqTemplate = template.Must(template.ParseFS(templateFS, "templates/faqs.html"))

// Prober starts fire-and-forget getHash probes.
type Prober interface {
	Go(ctx context.Context, id string)
}

// Handler holds the dependencies of the site routes.
type Handler struct {
	prober   Prober
	reader   *generator.Reader
	provider wallet.Provider
	logger   *zap.Logger
}

// NewHandler creates a Handler. provider may be nil.
func NewHandler(prober Prober, reader *generator.Reader, provider wallet.Provider, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{prober: prober, reader: reader, provider: provider, logger: logger}
}

// RegisterRoutes mounts the pages and API on r.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.faqs)
	r.Get("/faqs", h.faqs)
	r.Get("/health", h.health)

	r.Route("/api/instances/{id}", func(r chi.Router) {
		r.Post("/probe", h.probe)
		r.Get("/hash", apphttp.HandleError(h.getHash))
	})
}

func (h *Handler) faqs(w http.ResponseWriter, _ *http.Request) {
	data := struct {
		Title    string
		Entries  []FAQEntry
		Contract string
	}{
		Title:    "FAQs",
		Entries:  FAQs,
		Contract: h.reader.Address().Hex(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := faqTemplate.Execute(w, data); err != nil {
		h.logger.Error("Failed to render FAQ page", zap.Error(err))
	}
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	_ = apphttp.WriteJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"wallet": h.provider != nil,
	})
}

// probe kicks off a diagnostic lookup. The outcome only appears in the logs,
// so the response never depends on it.
func (h *Handler) probe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.prober.Go(context.WithoutCancel(r.Context()), id)
	_ = apphttp.WriteJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (h *Handler) getHash(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")
	sol, err := h.reader.Lookup(r.Context(), h.provider, id)
	if err != nil {
		h.logger.Debug("getHash lookup failed", zap.String("instance_id", id), zap.Error(err))
		return fmt.Errorf("lookup instance %s: %w", id, err)
	}
	return apphttp.WriteJSON(w, http.StatusOK, sol)
}
