package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// MinorUnits is the number of fractional digits money is rounded to.
const MinorUnits = 2

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

// String formats the amount with two decimals, e.g. "USD 41.00".
func (m Money) String() string {
	return m.Currency.String() + " " + m.Amount.StringFixed(MinorUnits)
}

// RoundMoney rounds a to currency precision.
func RoundMoney(a decimal.Decimal) decimal.Decimal {
	return a.Round(MinorUnits)
}
