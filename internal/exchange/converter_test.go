package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"currencyconverter/internal/rates"
)

func defaultConverter(t *testing.T) *Converter {
	t.Helper()
	src, err := rates.DefaultTable()
	require.NoError(t, err)
	return NewConverter(src)
}

func TestConvert(t *testing.T) {
	conv := defaultConverter(t)

	tests := []struct {
		name   string
		from   string
		to     string
		amount float64
		want   string
	}{
		{"identity", "USD", "USD", 10, "10.0000"},
		{"eur to jpy", "EUR", "JPY", 1, "127.5281"},
		{"usd to gbp", "USD", "GBP", 100, "75.0000"},
		{"jpy to rub", "JPY", "RUB", 1000, "655.1542"},
		{"lowercase codes", "eur", "jpy", 1, "127.5281"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := conv.Convert(tc.from, tc.to, tc.amount)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.ConvertedString())
			assert.Equal(t, tc.amount, res.Amount)
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	conv := defaultConverter(t)

	pairs := [][2]string{
		{"EUR", "JPY"},
		{"USD", "RUB"},
		{"GBP", "EUR"},
	}

	for _, p := range pairs {
		t.Run(p[0]+"/"+p[1], func(t *testing.T) {
			const amount = 10.0

			there, err := conv.Convert(p[0], p[1], amount)
			require.NoError(t, err)

			back, err := conv.Convert(p[1], p[0], there.Converted)
			require.NoError(t, err)

			assert.InDelta(t, amount, back.Converted, 0.001)
		})
	}
}

func TestConvertUnknownCurrency(t *testing.T) {
	conv := defaultConverter(t)

	_, err := conv.Convert("XYZ", "USD", 10)
	assert.ErrorIs(t, err, ErrUnknownCurrency)

	_, err = conv.Convert("USD", "XYZ", 10)
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestConvertBaseMissing(t *testing.T) {
	src := new(MockSource)
	src.On("Base").Return("USD")
	src.On("PriceOf", "USD").Return(0.0, false)

	conv := NewConverter(src)

	_, err := conv.Convert("USD", "EUR", 10)
	assert.ErrorIs(t, err, ErrUnknownCurrency)
	src.AssertExpectations(t)
	src.AssertNotCalled(t, "PriceOf", "EUR")
}

func TestResultStrings(t *testing.T) {
	r := &Result{Amount: 10, Converted: 1275.2809, From: "EUR", To: "JPY"}

	assert.Equal(t, "10", r.AmountString())
	assert.Equal(t, "1275.2809", r.ConvertedString())
}
