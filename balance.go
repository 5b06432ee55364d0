package dash

import "github.com/shopspring/decimal"

// BalanceAsset is one asset line of the account balance, already normalized
// by the retrieval adapter.
type BalanceAsset struct {
	Asset string
	Free  decimal.Decimal
	Used  decimal.Decimal // locked in open orders
	Total decimal.Decimal
	// QuotePrice is the last price in the quote asset; invalid when no
	// ticker resolved for this asset.
	QuotePrice decimal.NullDecimal
}

// Value is the quote-denominated value of the position, invalid when the
// price is unknown.
func (a BalanceAsset) Value() decimal.NullDecimal {
	if !a.QuotePrice.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: a.Total.Mul(a.QuotePrice.Decimal), Valid: true}
}

// BalanceSnapshot is the canonical account balance.
type BalanceSnapshot struct {
	QuoteAsset string
	Assets     []BalanceAsset
}

// Equity sums the value of every priced asset.
func (b BalanceSnapshot) Equity() decimal.Decimal {
	total := decimal.Zero
	for _, a := range b.Assets {
		if v := a.Value(); v.Valid {
			total = total.Add(v.Decimal)
		}
	}
	return total
}
