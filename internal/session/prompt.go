package session

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// promptCurrency asks for a currency code until a known one is entered.
// Input is normalized to uppercase; an unknown code re-asks the same
// question, it never fails the sub-flow.
func (s *Session) promptCurrency(prompt string) (string, error) {
	for {
		fmt.Fprintln(s.out, prompt)

		line, err := s.readLine()
		if err != nil {
			return "", err
		}

		code := strings.ToUpper(strings.TrimSpace(line))
		if _, ok := s.rates.PriceOf(code); ok {
			return code, nil
		}
		fmt.Fprintln(s.out, msgUnknownCur)
	}
}

// promptAmount asks for an amount until a number >= 1 is entered.
func (s *Session) promptAmount() (float64, error) {
	for {
		fmt.Fprintln(s.out, msgPromptAmount)

		line, err := s.readLine()
		if err != nil {
			return 0, err
		}

		amount, parseErr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if parseErr != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
			fmt.Fprintln(s.out, msgNotANumber)
			continue
		}
		if amount < 1 {
			fmt.Fprintln(s.out, msgAmountTooLow)
			continue
		}
		return amount, nil
	}
}
