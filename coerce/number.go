package coerce

import (
	"math/big"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/jmgilman/dappreg/errors"
)

// ParseNumber parses s as a finite number. Hex input must carry a 0x prefix;
// other input is read as a decimal that may use exponent notation. A leading
// sign is accepted in both forms. Neither form has a size limit.
func ParseNumber(s string) (*apd.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New(errors.CodeCoercionFailed, "empty value is not a number")
	}

	unsigned, negative := splitSign(s)
	if hasHexPrefix(unsigned) {
		n, ok := parseHex(unsigned[2:])
		if !ok {
			return nil, errors.WithContext(
				errors.New(errors.CodeCoercionFailed, "invalid hex number"),
				"value", s,
			)
		}
		if negative {
			n.Neg(n)
		}
		return apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(n), 0), nil
	}

	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeCoercionFailed, "invalid number",
			map[string]interface{}{"value": s})
	}
	if d.Form != apd.Finite {
		return nil, errors.WithContext(
			errors.New(errors.CodeCoercionFailed, "number is not finite"),
			"value", s,
		)
	}

	return d, nil
}

// ParseInteger parses s as a number that has no fractional part.
func ParseInteger(s string) (*big.Int, error) {
	d, err := ParseNumber(s)
	if err != nil {
		return nil, err
	}

	var reduced apd.Decimal
	reduced.Reduce(d)
	if reduced.Exponent < 0 {
		return nil, errors.WithContext(
			errors.New(errors.CodeCoercionFailed, "number is not an integer"),
			"value", s,
		)
	}

	n := reduced.Coeff.MathBigInt()
	if reduced.Exponent > 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(reduced.Exponent)), nil)
		n.Mul(n, scale)
	}
	if reduced.Negative {
		n.Neg(n)
	}

	return n, nil
}

// ToHex renders s as 0x-prefixed lowercase hex without leading zeros.
// Negative values render as -0x followed by the magnitude.
func ToHex(s string) (string, error) {
	n, err := ParseInteger(s)
	if err != nil {
		return "", err
	}

	if n.Sign() < 0 {
		return "-0x" + new(big.Int).Abs(n).Text(16), nil
	}
	return "0x" + n.Text(16), nil
}

// ToDecimal renders s as a plain base-10 string with trailing fractional
// zeros removed and no exponent.
func ToDecimal(s string) (string, error) {
	d, err := ParseNumber(s)
	if err != nil {
		return "", err
	}
	if d.IsZero() {
		return "0", nil
	}

	var reduced apd.Decimal
	reduced.Reduce(d)
	return reduced.Text('f'), nil
}

// ToBoolean renders s as "true" when it is a nonzero number. Zero and values
// that are not numbers, including the empty string, render as "false".
func ToBoolean(s string) string {
	d, err := ParseNumber(s)
	if err != nil || d.IsZero() {
		return "false"
	}
	return "true"
}

// parseHex parses bare hex digits. SetString would also accept a sign, which
// must not appear after the prefix.
func parseHex(digits string) (*big.Int, bool) {
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return nil, false
	}
	return new(big.Int).SetString(digits, 16)
}

func splitSign(s string) (string, bool) {
	switch {
	case strings.HasPrefix(s, "-"):
		return s[1:], true
	case strings.HasPrefix(s, "+"):
		return s[1:], false
	default:
		return s, false
	}
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
