// Package api serves chart building over HTTP.
package api

import (
	"encoding/csv"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ukaji3/tablechart-go/pkg/tablechart"
	"github.com/ukaji3/tablechart-go/pkg/tablechart/output"
)

// Options configures NewServer.
type Options struct {
	Logger *slog.Logger
	// HTML configures the script URLs of rendered pages.
	HTML output.HTMLOptions
	// MaxBodyBytes limits request bodies; zero means no limit.
	MaxBodyBytes int64
}

// NewServer returns the HTTP handler serving the chart API.
func NewServer(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)
	if opts.MaxBodyBytes > 0 {
		router.Use(middleware.RequestSize(opts.MaxBodyBytes))
	}

	cfg := huma.DefaultConfig("tablechart API", "1.0.0")
	api := humachi.New(router, cfg)

	registerHealthHandlers(api)
	registerChartHandlers(api, logger, opts.HTML)

	return router
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var parseErr *csv.ParseError
	var loadErr *tablechart.LoadError
	switch {
	case errors.Is(err, tablechart.ErrLengthMismatch),
		errors.Is(err, tablechart.ErrUnknownKind),
		errors.Is(err, tablechart.ErrInvalidYAxis),
		errors.Is(err, tablechart.ErrIndexColumn),
		errors.As(err, &parseErr):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, tablechart.ErrNoTable):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.As(err, &loadErr):
		// Request bodies are the only table source, so load failures are client errors.
		return huma.Error400BadRequest(err.Error())
	}
	return huma.Error500InternalServerError(err.Error())
}
