package portfolio

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"foliodash/internal/pricefeed"
)

var hundred = decimal.New(100, 0)

// Row is the display-ready derivation for one holding against a price
// snapshot.
type Row struct {
	HoldingID   uuid.UUID
	Symbol      string
	Name        string
	Amount      decimal.Decimal
	Price       decimal.Decimal
	Change24h   decimal.Decimal
	Value       decimal.Decimal
	ValueChange decimal.Decimal
}

// Summary aggregates all rows into portfolio-level metrics.
type Summary struct {
	TotalBalance    decimal.Decimal
	DayChangeAmount decimal.Decimal
	DayChangePct    decimal.Decimal
}

// yesterdayPrice derives the reference price implied by the 24h change:
// price / (1 + pct/100). A change of -100 or lower has no finite reference
// price and clamps to zero, so rows never carry an undefined value.
func yesterdayPrice(price, changePct decimal.Decimal) decimal.Decimal {
	denom := hundred.Add(changePct)
	if denom.Sign() <= 0 {
		return decimal.Zero
	}
	return price.Mul(hundred).Div(denom)
}

// DeriveRows recomputes per-holding metrics from the holdings and a price
// snapshot. Pure: the same inputs always yield the same rows. Symbols
// missing from the snapshot value at zero with a zero change.
func DeriveRows(holdings []Holding, prices pricefeed.PriceMap) []Row {
	rows := make([]Row, 0, len(holdings))
	for _, h := range holdings {
		price, change := decimal.Zero, decimal.Zero
		if pt, ok := prices[h.Symbol]; ok {
			price, change = pt.Price, pt.Change24h
		}

		value := h.Amount.Mul(price)
		yesterday := h.Amount.Mul(yesterdayPrice(price, change))

		rows = append(rows, Row{
			HoldingID:   h.ID,
			Symbol:      h.Symbol,
			Name:        h.Name,
			Amount:      h.Amount,
			Price:       price,
			Change24h:   change,
			Value:       value,
			ValueChange: value.Sub(yesterday),
		})
	}
	return rows
}

// DeriveSummary folds rows into the portfolio aggregates. A yesterday
// total of zero or less yields a 0% day change rather than a division
// error.
func DeriveSummary(rows []Row) Summary {
	total, change, yesterdayTotal := decimal.Zero, decimal.Zero, decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Value)
		change = change.Add(r.ValueChange)
		yesterdayTotal = yesterdayTotal.Add(r.Value.Sub(r.ValueChange))
	}

	s := Summary{TotalBalance: total, DayChangeAmount: change}
	if yesterdayTotal.Sign() > 0 {
		s.DayChangePct = total.Sub(yesterdayTotal).Div(yesterdayTotal).Mul(hundred)
	}
	return s
}
