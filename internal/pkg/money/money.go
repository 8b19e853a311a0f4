package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"maison-storefront/internal/pkg/errs"
)

// Cents is a currency amount in the minor unit (pesewas for GHS).
// All storefront arithmetic is integral; decimals exist only at the
// backend wire boundary, which serializes amounts as strings.
type Cents int64

// ParseDecimal converts the backend's decimal-string amount ("49.90")
// into cents. At most two fraction digits are accepted.
func ParseDecimal(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errs.New("empty amount")
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, errs.New("amount has more than two fraction digits: " + s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	// ParseInt tolerates a leading sign, which must not survive inside
	// either part ("12.-5" is not an amount).
	if !allDigits(whole) || !allDigits(frac) {
		return 0, errs.New("invalid amount: " + s)
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, errs.Wrap(err, "invalid amount: "+s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, errs.Wrap(err, "invalid amount: "+s)
	}

	c := Cents(w*100 + f)
	if neg {
		c = -c
	}
	return c, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FromFloat converts a decimal amount the backend serialized as a JSON
// number; rounding absorbs float noise.
func FromFloat(amount float64) Cents {
	return Cents(math.Round(amount * 100))
}

// MulRate applies a fractional rate (tax, percent discount) rounding to
// the nearest cent.
func (c Cents) MulRate(rate float64) Cents {
	return Cents(math.Round(float64(c) * rate))
}

func (c Cents) MulQty(qty int) Cents {
	return c * Cents(qty)
}

// Minor returns the provider minor-unit integer. Amounts are already in
// cents, so this is the inline-widget amount as-is.
func (c Cents) Minor() int64 {
	return int64(c)
}

// String formats as a plain decimal ("216.00") for wire payloads.
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
