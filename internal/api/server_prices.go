package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"foliodash/internal/pricefeed"
)

func registerPriceHandlers(api huma.API, svc Service) {
	type pricesOutput struct {
		Body struct {
			Prices pricefeed.PriceMap `json:"prices"`
		}
	}
	huma.Register(api, huma.Operation{OperationID: "get-prices", Method: http.MethodGet, Path: "/api/v1/prices", Summary: "Current price snapshot", Tags: []string{"Prices"}},
		func(ctx context.Context, input *struct{}) (*pricesOutput, error) {
			out := &pricesOutput{}
			out.Body.Prices = svc.Prices()
			return out, nil
		})
}
