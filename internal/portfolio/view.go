package portfolio

import (
	"github.com/shopspring/decimal"
)

// RowView is one holdings-table row ready for rendering: the raw numbers
// plus display strings in the configured currency.
type RowView struct {
	ID                 string          `json:"id"`
	Symbol             string          `json:"symbol"`
	Name               string          `json:"name"`
	Amount             decimal.Decimal `json:"amount"`
	Price              decimal.Decimal `json:"price"`
	Change24h          decimal.Decimal `json:"change_24h_pct"`
	Value              decimal.Decimal `json:"value"`
	ValueChange        decimal.Decimal `json:"value_change"`
	PriceDisplay       string          `json:"price_display"`
	ValueDisplay       string          `json:"value_display"`
	ValueChangeDisplay string          `json:"value_change_display"`
	ChangeDisplay      string          `json:"change_display"`
}

// SummaryView is the hero-section aggregate with display strings.
type SummaryView struct {
	TotalBalance        decimal.Decimal `json:"total_balance"`
	DayChangeAmount     decimal.Decimal `json:"day_change_amount"`
	DayChangePct        decimal.Decimal `json:"day_change_pct"`
	TotalBalanceDisplay string          `json:"total_balance_display"`
	DayChangeDisplay    string          `json:"day_change_display"`
}

// View is the full render model of the dashboard: rows, aggregates, the
// busy flag and the display currency.
type View struct {
	Rows       []RowView   `json:"rows"`
	Summary    SummaryView `json:"summary"`
	Currency   string      `json:"currency"`
	Refreshing bool        `json:"refreshing"`
}

// View assembles the complete render model from the current snapshot.
func (s *Service) View() View {
	rows := s.Rows()
	summary := DeriveSummary(rows)

	rowViews := make([]RowView, 0, len(rows))
	for _, r := range rows {
		rowViews = append(rowViews, RowView{
			ID:                 r.HoldingID.String(),
			Symbol:             r.Symbol,
			Name:               r.Name,
			Amount:             r.Amount,
			Price:              r.Price,
			Change24h:          r.Change24h,
			Value:              r.Value,
			ValueChange:        r.ValueChange,
			PriceDisplay:       s.fmtr.Format(r.Price),
			ValueDisplay:       s.fmtr.Format(r.Value),
			ValueChangeDisplay: s.fmtr.FormatSigned(r.ValueChange),
			ChangeDisplay:      signedPercent(r.Change24h),
		})
	}

	return View{
		Rows: rowViews,
		Summary: SummaryView{
			TotalBalance:        summary.TotalBalance,
			DayChangeAmount:     summary.DayChangeAmount,
			DayChangePct:        summary.DayChangePct,
			TotalBalanceDisplay: s.fmtr.Format(summary.TotalBalance),
			DayChangeDisplay:    s.fmtr.FormatSigned(summary.DayChangeAmount) + " (" + signedPercent(summary.DayChangePct) + ")",
		},
		Currency:   s.fmtr.Code(),
		Refreshing: s.refreshing.Load(),
	}
}

func signedPercent(pct decimal.Decimal) string {
	if pct.Sign() < 0 {
		return pct.StringFixed(2) + "%"
	}
	return "+" + pct.StringFixed(2) + "%"
}
