package worksheet

import (
	"fmt"
	"math/big"
	"strconv"

	"rfq-agent/internal/model"
)

const rupee = "₹"

// FormatPrice renders a compact range such as "₹1.5 L - ₹2.0 Cr" for INR.
func FormatPrice(p model.PriceRange) string {
	if p.Currency == model.CurrencyINR {
		return compactINR(p.Min) + " - " + compactINR(p.Max)
	}
	return fmt.Sprintf("%s %s - %s %s", p.Currency, groupIndian(p.Min), p.Currency, groupIndian(p.Max))
}

// FormatPriceExact renders the full range with Indian digit grouping.
func FormatPriceExact(p model.PriceRange) string {
	return rupee + groupIndian(p.Min) + " - " + rupee + groupIndian(p.Max)
}

func compactINR(n int64) string {
	switch {
	case n >= 10_000_000:
		return rupee + tenths(n, 10_000_000) + " Cr"
	case n >= 100_000:
		return rupee + tenths(n, 100_000) + " L"
	case n >= 1_000:
		return rupee + tenths(n, 1_000) + "K"
	default:
		return rupee + strconv.FormatInt(n, 10)
	}
}

// tenths returns n/unit with one decimal. The quotient is rounded as the
// float64 it is stored in, so 1150/1000 (1.1499...) gives "1.1" and only
// exact ties such as 1.25 round up.
func tenths(n, unit int64) string {
	x := new(big.Float).SetPrec(256).SetFloat64(float64(n) / float64(unit))
	x.Mul(x, big.NewFloat(10))

	whole, _ := x.Int(nil)
	frac := new(big.Float).SetPrec(256).Sub(x, new(big.Float).SetInt(whole))
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		whole.Add(whole, big.NewInt(1))
	}

	t := whole.Int64()
	return strconv.FormatInt(t/10, 10) + "." + strconv.FormatInt(t%10, 10)
}

// groupIndian formats n as 12,34,567: the last three digits, then pairs.
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	head, tail := s[:len(s)-3], s[len(s)-3:]
	var out []byte
	for i, c := range []byte(head) {
		if i > 0 && (len(head)-i)%2 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return sign + string(out) + "," + tail
}
