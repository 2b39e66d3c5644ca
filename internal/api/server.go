package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"foliodash/internal/portfolio"
	"foliodash/internal/pricefeed"
)

// Service is the portfolio surface the API exposes.
type Service interface {
	View() portfolio.View
	Prices() pricefeed.PriceMap
	Refresh(ctx context.Context) error
}

// NewServer wires the dashboard page, the JSON API and the websocket
// price stream onto one router. page and stream may be nil (tests).
func NewServer(svc Service, page, stream http.Handler) http.Handler {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(requestLogger)
	router.Use(middleware.Recoverer)

	cfg := huma.DefaultConfig("Folio Dashboard API", "1.0.0")
	cfg.DocsPath = ""
	api := humachi.New(router, cfg)

	router.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		if _, err := w.Write([]byte(docsHTML)); err != nil {
			slog.Debug("docs response write failed", "error", err)
		}
	})

	if page != nil {
		router.Method(http.MethodGet, "/", page)
	}
	if stream != nil {
		router.Method(http.MethodGet, "/ws/prices", stream)
	}

	registerPortfolioHandlers(api, svc)
	registerPriceHandlers(api, svc)
	registerMiscHandlers(api)

	return router
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var coded *portfolio.CodedError
	if errors.As(err, &coded) {
		switch coded.Code {
		case portfolio.CodeValidation:
			return huma.Error400BadRequest(coded.Message)
		case portfolio.CodeRefreshBusy:
			return huma.Error409Conflict(coded.Message)
		case portfolio.CodeFeedUnavailable:
			return huma.Error502BadGateway(coded.Message)
		default:
			return huma.Error500InternalServerError(fmt.Sprintf("%s: %s", coded.Code, coded.Message))
		}
	}
	return huma.Error500InternalServerError(err.Error())
}
