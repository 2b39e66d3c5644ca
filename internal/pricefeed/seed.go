package pricefeed

import "github.com/shopspring/decimal"

// DefaultSeed returns the built-in demo quotes the store starts from.
func DefaultSeed() PriceMap {
	return PriceMap{
		"BTC": {Symbol: "BTC", Price: decimal.New(118500000, -2), Change24h: decimal.New(142, -2)},
		"ETH": {Symbol: "ETH", Price: decimal.New(4487025, -2), Change24h: decimal.New(-58, -2)},
		"SOL": {Symbol: "SOL", Price: decimal.New(231040, -2), Change24h: decimal.New(315, -2)},
		"XRP": {Symbol: "XRP", Price: decimal.New(2864, -2), Change24h: decimal.New(-127, -2)},
	}
}
