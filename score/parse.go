package score

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/relaypad/chaincost"
)

// ParseCode validates s as a numeric-pad code ending in 'A' and extracts the
// value of its leading digits.
func ParseCode(s string) (Code, error) {
	if err := chaincost.ValidateCode(s); err != nil {
		return Code{}, err
	}
	digits := strings.TrimRight(s, "A")
	if i := strings.IndexByte(digits, 'A'); i >= 0 {
		digits = digits[:i]
	}
	if digits == "" {
		return Code{}, fmt.Errorf("%w: %q", ErrNoDigits, s)
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return Code{}, fmt.Errorf("score: code %q: %w", s, err)
	}

	return Code{Raw: s, Value: v}, nil
}

// ParseCodes reads one code per line from r. Blank lines and surrounding
// whitespace are ignored. Errors name the offending line.
func ParseCodes(r io.Reader) ([]Code, error) {
	var codes []Code
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		c, err := ParseCode(text)
		if err != nil {
			return nil, fmt.Errorf("score: line %d: %w", line, err)
		}
		codes = append(codes, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("score: reading codes: %w", err)
	}

	return codes, nil
}

// MustParseCodes parses codes from string literals known to be valid, as in
// tests and examples. It panics on error.
func MustParseCodes(raw ...string) []Code {
	codes := make([]Code, len(raw))
	for i, s := range raw {
		c, err := ParseCode(s)
		if err != nil {
			panic(err)
		}
		codes[i] = c
	}
	return codes
}
