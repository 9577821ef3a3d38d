// Package exchange implements the currency conversion arithmetic.
package exchange

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"currencyconverter/internal/rates"
)

// ErrUnknownCurrency indicates a currency code missing from the rate table.
var ErrUnknownCurrency = errors.New("unknown currency")

// Result holds the outcome of a single conversion.
type Result struct {
	Amount    float64
	Converted float64
	From      string
	To        string
}

// ConvertedString returns the converted amount as a fixed-point string with
// exactly 4 decimal places, trailing zeros kept.
func (r *Result) ConvertedString() string {
	return strconv.FormatFloat(r.Converted, 'f', 4, 64)
}

// AmountString returns the original amount without trailing zeros.
func (r *Result) AmountString() string {
	return strconv.FormatFloat(r.Amount, 'f', -1, 64)
}

// Converter converts amounts between currencies priced by a rates.Source.
type Converter struct {
	rates rates.Source
}

// NewConverter creates a new Converter over the given rate source.
func NewConverter(src rates.Source) *Converter {
	return &Converter{rates: src}
}

// Convert computes how much of the target currency the given amount of the
// source currency buys, rounded half-away-from-zero to 4 decimal places.
// Source and target may be equal. Unknown codes return ErrUnknownCurrency.
func (c *Converter) Convert(from, to string, amount float64) (*Result, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	basePrice, ok := c.rates.PriceOf(c.rates.Base())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCurrency, c.rates.Base())
	}
	fromPrice, ok := c.rates.PriceOf(from)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCurrency, from)
	}
	toPrice, ok := c.rates.PriceOf(to)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCurrency, to)
	}

	perBase := basePrice * fromPrice
	converted := round4(toPrice / perBase * amount)

	return &Result{
		Amount:    amount,
		Converted: converted,
		From:      from,
		To:        to,
	}, nil
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
