package coerce

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/jmgilman/dappreg/errors"
)

var (
	asciiMatcher   = regexp.MustCompile(`^[\x00-\x7F]*$`)
	hexMatcher     = regexp.MustCompile(`(?i)^0x[0-9a-f]*$`)
	decimalMatcher = regexp.MustCompile(`^[0-9]+$`)

	// hexListMatcher matches a bracketed list such as "[0x4f4b, 0x4e4f]".
	hexListMatcher = regexp.MustCompile(`^\[0x[0-9a-fA-F]+(, 0x[0-9a-fA-F]+)*\]$`)
)

// IsASCII reports whether s contains only 7-bit characters.
func IsASCII(s string) bool {
	return asciiMatcher.MatchString(s)
}

// IsHex reports whether s is 0x followed by zero or more hex digits.
func IsHex(s string) bool {
	return hexMatcher.MatchString(s)
}

// IsDecimal reports whether s is a non-empty run of decimal digits.
func IsDecimal(s string) bool {
	return decimalMatcher.MatchString(s)
}

// DecodeShortString decodes a short string written as hex or decimal. Every
// decoded byte must be ASCII; control characters are kept. Failures carry the
// recoverable CodeDecodeFailed.
func DecodeShortString(s string) (string, error) {
	if !IsASCII(s) {
		return "", decodeError("value is not ASCII", s)
	}

	var encoded string
	switch {
	case IsHex(s):
		encoded = s
	case IsDecimal(s):
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return "", decodeError("invalid decimal value", s)
		}
		digits := n.Text(16)
		if len(digits)%2 != 0 {
			digits = "0" + digits
		}
		encoded = "0x" + digits
	default:
		return "", decodeError("value is neither hex nor decimal", s)
	}

	raw, err := hexutil.Decode("0x" + encoded[2:])
	if err != nil {
		return "", errors.WrapWithContext(err, errors.CodeDecodeFailed, "invalid hex value",
			map[string]interface{}{"value": s})
	}
	if len(raw) == 0 {
		return "", decodeError("value decodes to an empty string", s)
	}
	for _, b := range raw {
		if b > 0x7f {
			return "", decodeError("value decodes to non-ASCII bytes", s)
		}
	}

	return string(raw), nil
}

// DecodeShortStringList decodes a bracketed list of hex short strings and
// joins the results with spaces.
func DecodeShortStringList(s string) (string, error) {
	if !hexListMatcher.MatchString(s) {
		return "", decodeError("value is not a bracketed hex list", s)
	}

	items := strings.Split(s[1:len(s)-1], ",")
	decoded := make([]string, 0, len(items))
	for _, item := range items {
		str, err := DecodeShortString(strings.TrimSpace(item))
		if err != nil {
			return "", err
		}
		decoded = append(decoded, str)
	}

	return strings.Join(decoded, " "), nil
}

func decodeError(message, value string) error {
	return errors.WithContext(errors.New(errors.CodeDecodeFailed, message), "value", value)
}
