// Package session implements the interactive command loop of the converter.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"currencyconverter/internal/exchange"
	"currencyconverter/internal/rates"
)

// Command identifiers shown in the menu.
const (
	cmdConvert = "1"
	cmdExit    = "2"
)

// User-facing literals.
const (
	msgWelcome      = "Welcome to Currency Converter!"
	msgMenu         = "1-Convert currencies 2-Exit program"
	msgUnknownInput = "Unknown input"
	msgUnknownCur   = "Unknown currency"
	msgNotANumber   = "The amount has to be a number"
	msgAmountTooLow = "The amount cannot be less than 1"
	msgFarewell     = "Have a nice day!"
	msgPromptFrom   = "What do you want to convert? (type the currency code)"
	msgPromptTo     = "What do you want to convert to? (type the currency code)"
	msgPromptAmount = "How much do you want to convert?"
)

// Session drives the interactive read-eval-print loop. Input and output are
// injected so the loop can be scripted in tests.
type Session struct {
	rates rates.Source
	conv  *exchange.Converter
	in    *bufio.Scanner
	out   io.Writer
	log   *zap.SugaredLogger
}

// New creates a Session reading lines from in and printing to out.
func New(src rates.Source, conv *exchange.Converter, in io.Reader, out io.Writer, logger *zap.SugaredLogger) *Session {
	return &Session{
		rates: src,
		conv:  conv,
		in:    bufio.NewScanner(in),
		out:   out,
		log:   logger,
	}
}

// Run prints the intro and processes commands until the exit command.
// It returns nil on explicit exit; any error it returns ends the process.
func (s *Session) Run() error {
	s.printIntro()

	for {
		fmt.Fprintln(s.out, msgMenu)

		line, err := s.readLine()
		if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case cmdConvert:
			if err := s.runConversion(); err != nil {
				return err
			}
		case cmdExit:
			fmt.Fprintln(s.out, msgFarewell)
			s.log.Infow("Session ended by exit command")
			return nil
		default:
			fmt.Fprintln(s.out, msgUnknownInput)
		}
	}
}

func (s *Session) printIntro() {
	fmt.Fprintln(s.out, msgWelcome)
	base := s.rates.Base()
	for _, code := range s.rates.Codes() {
		price, ok := s.rates.PriceOf(code)
		if !ok {
			continue
		}
		fmt.Fprintf(s.out, "1 %s equals %s %s\n", base, strconv.FormatFloat(price, 'f', -1, 64), code)
	}
}

// readLine blocks until the next input line. A closed or failing input
// stream is an unrecoverable condition for the whole program.
func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", fmt.Errorf("read input: %w", io.ErrUnexpectedEOF)
	}
	return s.in.Text(), nil
}

func (s *Session) runConversion() error {
	conversionID := uuid.New().String()

	from, err := s.promptCurrency(msgPromptFrom)
	if err != nil {
		return err
	}
	to, err := s.promptCurrency(msgPromptTo)
	if err != nil {
		return err
	}
	amount, err := s.promptAmount()
	if err != nil {
		return err
	}

	res, err := s.conv.Convert(from, to, amount)
	if err != nil {
		// The prompts keep unknown codes out, so a lookup miss here means
		// the table and the prompts disagree.
		s.log.Warnw("Conversion failed", "conversion_id", conversionID,
			"from", from, "to", to, "error", err)
		return &RecoverableError{Message: msgUnknownCur, Err: err}
	}

	fmt.Fprintf(s.out, "%s %s is %s %s\n",
		res.AmountString(), res.From, res.ConvertedString(), res.To)

	s.log.Infow("Conversion completed", "conversion_id", conversionID,
		"from", res.From, "to", res.To,
		"amount", res.Amount, "converted", res.Converted)
	return nil
}
