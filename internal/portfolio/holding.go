package portfolio

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Holding is a fixed quantity of one asset owned for the session.
// Holdings are created at startup and never mutated or persisted.
type Holding struct {
	ID     uuid.UUID       `json:"id"`
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// DefaultHoldings returns the built-in demo portfolio.
func DefaultHoldings() []Holding {
	return []Holding{
		{ID: uuid.New(), Symbol: "BTC", Name: "Bitcoin", Amount: decimal.New(523, -4)},
		{ID: uuid.New(), Symbol: "ETH", Name: "Ethereum", Amount: decimal.New(184, -2)},
		{ID: uuid.New(), Symbol: "SOL", Name: "Solana", Amount: decimal.New(125, -1)},
		{ID: uuid.New(), Symbol: "XRP", Name: "XRP", Amount: decimal.New(450, 0)},
	}
}
