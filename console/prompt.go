package console

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// numberPattern accepts integer and floating point literals with an optional
// sign. Exponent notation is rejected.
var numberPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// prompter reads one answer per line. Every read returns io.EOF once input
// is exhausted so the session can end cleanly.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *prompter) line(message string) (string, error) {
	fmt.Fprint(p.out, message)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// text asks until a non-blank answer is given.
func (p *prompter) text(message string) (string, error) {
	for {
		s, err := p.line(message)
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		p.say("An empty answer is not valid. Try again.")
	}
}

// letter asks for a single alphabetic character, uppercased.
func (p *prompter) letter(message string) (rune, error) {
	for {
		s, err := p.line(message + ": ")
		if err != nil {
			return 0, err
		}
		r := []rune(s)
		if len(r) != 1 {
			p.say("That's not a single character. Try again.")
			continue
		}
		if !unicode.IsLetter(r[0]) {
			p.say("That's not an alphabetic character. Try again.")
			continue
		}
		return unicode.ToUpper(r[0]), nil
	}
}

// choice asks until the answer is one of allowed.
func (p *prompter) choice(message string, allowed []rune) (rune, error) {
	for {
		r, err := p.letter(message)
		if err != nil {
			return 0, err
		}
		for _, a := range allowed {
			if a == r {
				return r, nil
			}
		}
		p.say("The only allowed answers are: %s. Try again.", listAnswers(allowed))
	}
}

// number asks for a decimal shown with its [lo, hi] range, re-asking until
// validate accepts it.
func (p *prompter) number(message string, lo, hi decimal.Decimal, validate func(decimal.Decimal) error) (decimal.Decimal, error) {
	label := fmt.Sprintf("%s (%s - %s): ", message, lo.StringFixed(2), hi.StringFixed(2))
	for {
		s, err := p.line(label)
		if err != nil {
			return decimal.Zero, err
		}
		if !numberPattern.MatchString(s) {
			p.say("That's not an integer number nor a valid floating point number. Try again.")
			continue
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			p.say("That's not an integer number nor a valid floating point number. Try again.")
			continue
		}
		if err := validate(d); err != nil {
			p.say("%v. Try again.", err)
			continue
		}
		return d, nil
	}
}

// listAnswers renders "A, B, or X".
func listAnswers(allowed []rune) string {
	parts := make([]string, len(allowed))
	for i, r := range allowed {
		parts[i] = string(r)
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " or " + parts[1]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + ", or " + parts[len(parts)-1]
}
