package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCHF Currency = "CHF"
	CurrencyJPY Currency = "JPY"
)

// fractionDigits holds the canonical number of fraction digits per currency
var fractionDigits = map[Currency]int32{
	CurrencyUSD: 2,
	CurrencyEUR: 2,
	CurrencyGBP: 2,
	CurrencyCHF: 2,
	CurrencyJPY: 0,
}

// ParseCurrency validates a currency code
func ParseCurrency(s string) (Currency, error) {
	c := Currency(s)
	if _, ok := fractionDigits[c]; !ok {
		return "", ErrUnknownCurrency
	}
	return c, nil
}

// String returns the currency code
func (c Currency) String() string {
	return string(c)
}

// Money is an immutable currency amount. Amounts are kept at the
// currency's canonical scale, rounded half-even on construction.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates a Money rescaled to the currency's fraction digits
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	digits, ok := fractionDigits[currency]
	if !ok {
		return Money{}, ErrUnknownCurrency
	}
	return Money{amount: amount.RoundBank(digits), currency: currency}, nil
}

// NewMoneyFromString creates a Money from a decimal string such as "1299.99"
func NewMoneyFromString(amount string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return NewMoney(d, currency)
}

// Zero returns a zero amount in the given currency
func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	return m.currency
}

// Add returns the sum of two amounts of the same currency
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns the difference of two amounts of the same currency
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// Multiply scales the amount by a factor, rounding half-even back to
// the currency's scale
func (m Money) Multiply(factor decimal.Decimal) Money {
	return Money{
		amount:   m.amount.Mul(factor).RoundBank(fractionDigits[m.currency]),
		currency: m.currency,
	}
}

// Divide scales the amount by a divisor, rounding half-even back to
// the currency's scale
func (m Money) Divide(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	return Money{
		amount:   m.amount.Div(divisor).RoundBank(fractionDigits[m.currency]),
		currency: m.currency,
	}, nil
}

// IsPositive reports whether the amount is strictly greater than zero
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZero reports whether the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal reports whether amount and currency both match
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// AmountFixed formats the amount at the currency's scale, e.g. "1325.98"
func (m Money) AmountFixed() string {
	return m.amount.StringFixed(fractionDigits[m.currency])
}

// String formats the amount at the currency's scale, e.g. "1325.98 USD"
func (m Money) String() string {
	return m.AmountFixed() + " " + string(m.currency)
}

type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON encodes the amount as a fixed-point string
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:   m.AmountFixed(),
		Currency: string(m.currency),
	})
}

// UnmarshalJSON decodes and validates a money value
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	currency, err := ParseCurrency(raw.Currency)
	if err != nil {
		return err
	}
	parsed, err := NewMoneyFromString(raw.Amount, currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
