package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func mustMoney(t *testing.T, amount string, currency Currency) Money {
	t.Helper()
	m, err := NewMoneyFromString(amount, currency)
	if err != nil {
		t.Fatalf("NewMoneyFromString(%q, %s): %v", amount, currency, err)
	}
	return m
}

func TestNewMoney_RescalesHalfEven(t *testing.T) {
	tests := []struct {
		amount   string
		currency Currency
		want     string
	}{
		{"10.005", CurrencyUSD, "10.00"},
		{"10.015", CurrencyUSD, "10.02"},
		{"10.025", CurrencyUSD, "10.02"},
		{"1299.99", CurrencyUSD, "1299.99"},
		{"100.5", CurrencyJPY, "100"},
		{"101.5", CurrencyJPY, "102"},
	}

	for _, tt := range tests {
		got := mustMoney(t, tt.amount, tt.currency)
		if got.AmountFixed() != tt.want {
			t.Errorf("NewMoney(%s %s) = %s, want %s", tt.amount, tt.currency, got.AmountFixed(), tt.want)
		}
	}
}

func TestNewMoney_UnknownCurrency(t *testing.T) {
	if _, err := NewMoney(decimal.NewFromInt(1), Currency("XXX")); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("expected ErrUnknownCurrency, got %v", err)
	}
	if _, err := ParseCurrency("DOGE"); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("expected ErrUnknownCurrency, got %v", err)
	}
}

func TestMoney_AddZeroRoundTrip(t *testing.T) {
	m := mustMoney(t, "1325.98", CurrencyUSD)

	got, err := m.Add(Zero(CurrencyUSD))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !got.Equal(m) {
		t.Errorf("adding zero changed the amount: got %s, want %s", got, m)
	}
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	usd := mustMoney(t, "10.00", CurrencyUSD)
	eur := mustMoney(t, "10.00", CurrencyEUR)

	if _, err := usd.Add(eur); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Add: expected ErrCurrencyMismatch, got %v", err)
	}
	if _, err := usd.Subtract(eur); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Subtract: expected ErrCurrencyMismatch, got %v", err)
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := mustMoney(t, "10.50", CurrencyUSD)
	b := mustMoney(t, "0.52", CurrencyUSD)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sum.AmountFixed() != "11.02" {
		t.Errorf("Add = %s, want 11.02", sum.AmountFixed())
	}

	diff, err := a.Subtract(b)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if diff.AmountFixed() != "9.98" {
		t.Errorf("Subtract = %s, want 9.98", diff.AmountFixed())
	}

	product := a.Multiply(decimal.NewFromInt(3))
	if product.AmountFixed() != "31.50" {
		t.Errorf("Multiply = %s, want 31.50", product.AmountFixed())
	}

	quotient, err := a.Divide(decimal.NewFromInt(3))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if quotient.AmountFixed() != "3.50" {
		t.Errorf("Divide = %s, want 3.50", quotient.AmountFixed())
	}
}

func TestMoney_DivideByZero(t *testing.T) {
	m := mustMoney(t, "10.00", CurrencyUSD)

	if _, err := m.Divide(decimal.Zero); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestMoney_Equal(t *testing.T) {
	a := mustMoney(t, "10.00", CurrencyUSD)
	b := mustMoney(t, "10.00", CurrencyUSD)
	c := mustMoney(t, "10.00", CurrencyEUR)
	d := mustMoney(t, "10.01", CurrencyUSD)

	if !a.Equal(b) {
		t.Error("equal amounts of the same currency should be equal")
	}
	if a.Equal(c) {
		t.Error("same amount in different currencies should not be equal")
	}
	if a.Equal(d) {
		t.Error("different amounts should not be equal")
	}
}
