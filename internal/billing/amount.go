// Package billing holds the request-scoped bill types accepted by the checkout
// notifiers, together with their money arithmetic and input validation.
package billing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary (or count) value decoded from a JSON number or a
// numeric string. Set reports whether the caller supplied a value at all;
// null, a missing key and "" all leave it unset.
//
// Strings that are not numeric are coerced to zero but still count as set,
// which mirrors how the checkout UI has always been treated. The zero
// Amount is an unset zero value.
//
// Values whose magnitude reaches 1e16, or that carry more than MaxScale
// fractional digits, decode as set but out of range: they hold zero and fail
// validation with the "lte" rule.
type Amount struct {
	decimal.Decimal
	Set bool

	outOfRange bool
}

const (
	// MaxAmount is the largest magnitude accepted by validation.
	MaxAmount = 1e15
	// MaxScale is the largest number of fractional digits accepted.
	MaxScale = 18

	maxLiteralLen = 64
	maxMagnitude  = 16
)

// NewAmount returns a set Amount holding v.
func NewAmount(v float64) Amount { return Amount{Decimal: decimal.NewFromFloat(v), Set: true} }

// OutOfRange reports whether the decoded value was too large or too precise
// to be represented.
func (a Amount) OutOfRange() bool {
	return a.outOfRange
}

// parseBounded parses s without ever materialising more than maxLiteralLen
// digits. ok is false when s is not a number; overflow is true when it is a
// number outside the accepted range.
func parseBounded(s string) (d decimal.Decimal, ok, overflow bool) {
	if len(s) <= maxLiteralLen {
		if d, err := decimal.NewFromString(s); err == nil {
			exp := int64(d.Exponent())
			if exp < -MaxScale || int64(d.NumDigits())+exp > maxMagnitude {
				return decimal.Zero, true, true
			}
			return d, true, false
		}
	}
	// Too long, or an exponent beyond int32: still a number if strconv can
	// classify it. Inf and NaN spellings are not numbers here.
	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) || (err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)) {
		return decimal.Zero, true, true
	}
	return decimal.Zero, false, false
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*a = Amount{}
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*a = Amount{}
			return nil
		}
		d, _, overflow := parseBounded(s)
		*a = Amount{Decimal: d, Set: true, outOfRange: overflow}
		return nil
	case '{', '[', 't', 'f':
		return fmt.Errorf("amount must be a number or numeric string, got %s", b)
	}

	d, ok, overflow := parseBounded(string(b))
	if !ok {
		return fmt.Errorf("parsing amount %.32s: not a number", b)
	}
	*a = Amount{Decimal: d, Set: true, outOfRange: overflow}
	return nil
}

// MarshalJSON implements json.Marshaler. Unset amounts encode as null.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Set {
		return []byte("null"), nil
	}
	return []byte(a.Decimal.String()), nil
}
