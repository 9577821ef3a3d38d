// Package rates provides the read-only table of currency prices the
// converter works with.
package rates

import (
	"errors"
	"fmt"
	"strings"
)

// Source defines an interface for reading currency prices relative to a
// base currency. A missing code is reported through the boolean, never as
// an error.
type Source interface {
	// Base returns the base currency code. Its price is always 1.
	Base() string
	// PriceOf returns the price of one base unit expressed in the given
	// currency. Lookup is case-insensitive.
	PriceOf(code string) (float64, bool)
	// Codes returns all known currency codes in insertion order.
	Codes() []string
}

// Entry is a single currency price in the table.
type Entry struct {
	Code  string
	Price float64
}

var _ Source = (*StaticSource)(nil)

// StaticSource is an immutable in-memory Source populated once at
// construction.
type StaticSource struct {
	base   string
	codes  []string
	prices map[string]float64
}

// NewStaticSource builds a StaticSource from ordered entries. It validates
// that codes are unique, prices are strictly positive, and the base entry
// is present with price 1.
func NewStaticSource(base string, entries ...Entry) (*StaticSource, error) {
	base = strings.ToUpper(base)

	s := &StaticSource{
		base:   base,
		codes:  make([]string, 0, len(entries)),
		prices: make(map[string]float64, len(entries)),
	}

	var errs []error
	for _, e := range entries {
		code := strings.ToUpper(e.Code)
		if _, dup := s.prices[code]; dup {
			errs = append(errs, fmt.Errorf("duplicate currency %q", code))
			continue
		}
		if e.Price <= 0 {
			errs = append(errs, fmt.Errorf("price of %q must be positive, got %v", code, e.Price))
			continue
		}
		s.codes = append(s.codes, code)
		s.prices[code] = e.Price
	}

	if p, ok := s.prices[base]; !ok {
		errs = append(errs, fmt.Errorf("base currency %q missing from table", base))
	} else if p != 1 {
		errs = append(errs, fmt.Errorf("base currency %q must be priced 1, got %v", base, p))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return s, nil
}

// Base returns the base currency code.
func (s *StaticSource) Base() string {
	return s.base
}

// PriceOf returns the price of the given currency code (case-insensitive).
func (s *StaticSource) PriceOf(code string) (float64, bool) {
	p, ok := s.prices[strings.ToUpper(code)]
	return p, ok
}

// Codes returns a copy of the known currency codes in insertion order.
func (s *StaticSource) Codes() []string {
	codes := make([]string, len(s.codes))
	copy(codes, s.codes)
	return codes
}

// BaseCurrency is the base of the built-in table.
const BaseCurrency = "USD"

// DefaultTable returns the built-in rate table. The prices are fixed at
// startup and are not configurable in this version.
func DefaultTable() (*StaticSource, error) {
	return NewStaticSource(BaseCurrency,
		Entry{Code: "USD", Price: 1},
		Entry{Code: "JPY", Price: 113.5},
		Entry{Code: "EUR", Price: 0.89},
		Entry{Code: "RUB", Price: 74.36},
		Entry{Code: "GBP", Price: 0.75},
	)
}
