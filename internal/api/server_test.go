package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foliodash/internal/portfolio"
	"foliodash/internal/pricefeed"
)

// stubService returns canned data and records refresh calls.
type stubService struct {
	view       portfolio.View
	prices     pricefeed.PriceMap
	refreshErr error
	refreshed  int
}

func (s *stubService) View() portfolio.View { return s.view }

func (s *stubService) Prices() pricefeed.PriceMap { return s.prices.Clone() }

func (s *stubService) Refresh(ctx context.Context) error {
	s.refreshed++
	return s.refreshErr
}

func newStub() *stubService {
	return &stubService{
		view: portfolio.View{
			Rows: []portfolio.RowView{{Symbol: "BTC", Name: "Bitcoin", ValueDisplay: "$61,975.50"}},
			Summary: portfolio.SummaryView{
				TotalBalanceDisplay: "$61,975.50",
				DayChangeDisplay:    "+$867.73 (+1.42%)",
			},
			Currency: "USD",
		},
		prices: pricefeed.DefaultSeed(),
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(NewServer(newStub(), nil, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
}

func TestGetPortfolio(t *testing.T) {
	srv := httptest.NewServer(NewServer(newStub(), nil, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/portfolio")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view portfolio.View
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "BTC", view.Rows[0].Symbol)
	assert.Equal(t, "$61,975.50", view.Summary.TotalBalanceDisplay)
	assert.Equal(t, "USD", view.Currency)
}

func TestGetPrices(t *testing.T) {
	srv := httptest.NewServer(NewServer(newStub(), nil, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/prices")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Prices map[string]struct {
			Symbol string `json:"symbol"`
		} `json:"prices"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Prices, 4)
	for _, sym := range []string{"BTC", "ETH", "SOL", "XRP"} {
		assert.Contains(t, body.Prices, sym)
	}
}

func TestRefreshPortfolio(t *testing.T) {
	stub := newStub()
	srv := httptest.NewServer(NewServer(stub, nil, nil))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/portfolio/refresh", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, stub.refreshed)
}

func TestRefreshBusyMapsTo409(t *testing.T) {
	stub := newStub()
	stub.refreshErr = &portfolio.CodedError{Code: portfolio.CodeRefreshBusy, Message: "a refresh is already in flight"}
	srv := httptest.NewServer(NewServer(stub, nil, nil))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/portfolio/refresh", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestFeedUnavailableMapsTo502(t *testing.T) {
	stub := newStub()
	stub.refreshErr = &portfolio.CodedError{Code: portfolio.CodeFeedUnavailable, Message: "price feed advance failed"}
	srv := httptest.NewServer(NewServer(stub, nil, nil))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/portfolio/refresh", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestPageMountsAtRoot(t *testing.T) {
	page := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<div id="dashboard-root"></div>`))
	})
	srv := httptest.NewServer(NewServer(newStub(), page, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
}
