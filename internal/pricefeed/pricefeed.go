package pricefeed

import "github.com/shopspring/decimal"

// PricePoint is one symbol's current quote: the last price and the running
// 24-hour change percentage. Points are immutable once produced; Advance
// replaces the whole map instead of mutating points in place.
type PricePoint struct {
	Symbol    string          `json:"symbol"`
	Price     decimal.Decimal `json:"price"`
	Change24h decimal.Decimal `json:"change_24h_pct"`
}

// PriceMap maps an asset symbol to its current PricePoint.
type PriceMap map[string]PricePoint

// Clone returns an independent copy of the map.
func (m PriceMap) Clone() PriceMap {
	out := make(PriceMap, len(m))
	for sym, pt := range m {
		out[sym] = pt
	}
	return out
}

// Equal reports whether both maps hold the same symbols with equal values.
func (m PriceMap) Equal(other PriceMap) bool {
	if len(m) != len(other) {
		return false
	}
	for sym, pt := range m {
		o, ok := other[sym]
		if !ok || o.Symbol != pt.Symbol {
			return false
		}
		if !o.Price.Equal(pt.Price) || !o.Change24h.Equal(pt.Change24h) {
			return false
		}
	}
	return true
}
