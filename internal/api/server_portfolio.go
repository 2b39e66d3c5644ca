package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"foliodash/internal/portfolio"
)

type portfolioOutput struct {
	Body portfolio.View
}

func registerPortfolioHandlers(api huma.API, svc Service) {
	huma.Register(api, huma.Operation{OperationID: "get-portfolio", Method: http.MethodGet, Path: "/api/v1/portfolio", Summary: "Current holdings valuation", Tags: []string{"Portfolio"}},
		func(ctx context.Context, input *struct{}) (*portfolioOutput, error) {
			out := &portfolioOutput{}
			out.Body = svc.View()
			return out, nil
		})

	huma.Register(api, huma.Operation{OperationID: "refresh-portfolio", Method: http.MethodPost, Path: "/api/v1/portfolio/refresh", Summary: "Advance the mock feed and revalue", Tags: []string{"Portfolio"}},
		func(ctx context.Context, input *struct{}) (*portfolioOutput, error) {
			if err := svc.Refresh(ctx); err != nil {
				return nil, mapErr(err)
			}
			out := &portfolioOutput{}
			out.Body = svc.View()
			return out, nil
		})
}
