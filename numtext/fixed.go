package numtext

import "math"

// Fixed is a decimal value stored as a scaled integer, the same representation
// FixedPoint<T> uses: Value holds the digits with the point removed and Decimals
// records how many of the low-order digits are fractional.
type Fixed struct {
	Value    int64
	Decimals int
}

// Invalid is returned by ParseFixed when s is not a well-formed (possibly signed)
// decimal number.
var Invalid = Fixed{Value: math.MinInt64, Decimals: 0}

// ParseFixed scans s as a decimal number, accumulating its digits into a scaled
// integer instead of a float so that downstream comparisons stay exact. It stops at
// the first whitespace byte and reports Invalid if s does not start with a digit (after
// an optional '-') or if any other byte before that point is neither a digit nor the
// decimal point.
func ParseFixed(s []byte) Fixed {
	i := 0
	neg := false
	if i < len(s) && s[i] == '-' {
		neg = true
		i++
	}

	if i >= len(s) || s[i] < '0' || s[i] > '9' {
		return Invalid
	}

	var v int64
	decimals := 0
	decimalInc := 0

	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			v = 10*v + int64(c-'0')
			decimals += decimalInc
		case c == '.' && decimals == 0:
			decimalInc = 1
		case c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r':
			i = len(s)
		default:
			return Invalid
		}
	}

	if neg {
		v = -v
	}

	return Fixed{Value: v, Decimals: decimals}
}

// AppendTo appends the decimal rendering of f to dst, splitting the scaled integer back
// into an integral and fractional part the way FixedPoint::toString does.
func (f Fixed) AppendTo(dst []byte) []byte {
	v := f.Value
	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}

	if f.Decimals <= 0 {
		return AppendUint(dst, uint64(v))
	}

	scale := powers10[f.Decimals]
	before := uint64(v) / scale
	after := uint64(v) % scale

	dst = AppendUint(dst, before)
	dst = append(dst, '.')
	dst = append(dst, digits[after*5+uint64(5-f.Decimals):after*5+5]...)

	return dst
}

// AlterPrecision rescales value from curDecimals fractional digits to refDecimals,
// matching FixedPoint::alterPrecision's multiply-or-divide by a power of ten.
func AlterPrecision(value int64, curDecimals, refDecimals int) int64 {
	switch {
	case curDecimals < refDecimals:
		return value * int64(powers10[refDecimals-curDecimals])
	case curDecimals > refDecimals:
		return value / int64(powers10[curDecimals-refDecimals])
	default:
		return value
	}
}
