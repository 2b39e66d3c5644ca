package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foliodash/internal/currency"
	"foliodash/internal/portfolio"
	"foliodash/internal/pricefeed"
)

type staticSource struct {
	view portfolio.View
}

func (s staticSource) View() portfolio.View { return s.view }

func renderedPage(t *testing.T) string {
	t.Helper()

	store := pricefeed.NewStore(pricefeed.DefaultSeed(), pricefeed.WithLatency(0))
	svc := portfolio.NewService(store, portfolio.DefaultHoldings(), currency.NewFormatter("USD"))

	h, err := NewHandler(svc)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return string(body)
}

func TestPageCarriesStableMarkers(t *testing.T) {
	body := renderedPage(t)

	for _, marker := range []string{
		`id="dashboard-root"`,
		`id="total-balance"`,
		`id="day-change"`,
		`id="holdings-table"`,
		`id="refresh-button"`,
	} {
		assert.Contains(t, body, marker)
	}
}

func TestPageRendersHoldingsAndBalance(t *testing.T) {
	body := renderedPage(t)

	for _, name := range []string{"Bitcoin", "Ethereum", "Solana", "XRP"} {
		assert.Contains(t, body, name)
	}
	// Seeded BTC valuation: 0.0523 * 1185000.00.
	assert.Contains(t, body, "$61,975.50")
}

func TestPageSetsHTMLContentType(t *testing.T) {
	h, err := NewHandler(staticSource{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}
