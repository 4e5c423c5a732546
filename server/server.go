// Package server exposes the dashboard over HTTP as JSON and PNG for a
// browser front end.
package server

import (
	"context"
	"net/http"

	"github.com/andareed/siftly-bikes/charts"
	"github.com/andareed/siftly-bikes/dataset"
	"github.com/andareed/siftly-bikes/engine"
	"github.com/andareed/siftly-bikes/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Options struct {
	CORSOrigins []string
	View        engine.Options
	ChartSize   charts.Size
}

// Handler serves one data source. It keeps no per-request state: every
// request reads the dataset through the cache and works on its own relabeled
// copy.
type Handler struct {
	source dataset.Source
	cache  *dataset.Cache
	opts   Options
}

func NewHandler(src dataset.Source, cache *dataset.Cache, opts Options) *Handler {
	if cache == nil {
		cache = dataset.NewCache()
	}
	return &Handler{source: src, cache: cache, opts: opts}
}

// Router builds the chi router with middleware and all routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	if len(h.opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.opts.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	h.RegisterRoutes(r)
	return r
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/columns", h.Columns)
		r.Get("/columns/{column}/values", h.Values)
		r.Get("/view", h.View)
		r.Get("/charts/grouped.png", h.GroupedChart)
		r.Get("/charts/top-days.png", h.TopDaysChart)
		r.Post("/cache/invalidate", h.Invalidate)
	})
}

// relabeled returns this request's copy of the dataset.
func (h *Handler) relabeled(ctx context.Context) (*dataset.Dataset, error) {
	raw, err := h.cache.Get(ctx, h.source)
	if err != nil {
		return nil, err
	}
	ds, warnings := dataset.Relabel(raw)
	for _, w := range warnings {
		logging.Warnf("relabel: %s", w)
	}
	return ds, nil
}

// ListenAndServe runs the server until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		logging.Infof("server: shutting down")
		return srv.Shutdown(context.Background())
	}
}
