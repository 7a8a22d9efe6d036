package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatDisplayAmount renders a decimal amount as a localized currency string
// for report responses, e.g. 4500 KES -> "KES4,500.00". Falls back to the
// plain decimal string if the currency code is not known to go-money.
func FormatDisplayAmount(amount decimal.Decimal, currencyCode string) string {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		return amount.String()
	}
	minorUnits := amount.Shift(int32(currency.Fraction)).Round(0).IntPart()
	return money.New(minorUnits, currencyCode).Display()
}
