package coerce

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/dappreg/errors"
)

func TestToHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"decimal", "255", "0xff", false},
		{"hex lowercases", "0xABCDEF", "0xabcdef", false},
		{"hex strips leading zeros", "0x000abc", "0xabc", false},
		{"uppercase prefix", "0X1F", "0x1f", false},
		{"zero", "0", "0x0", false},
		{"exponent", "1e3", "0x3e8", false},
		{"integral fraction", "16.000", "0x10", false},
		{"negative", "-255", "-0xff", false},
		{"negative hex", "-0x10", "-0x10", false},
		{"surrounding whitespace", " 10 ", "0xa", false},
		{"fraction", "1.5", "", true},
		{"empty", "", "", true},
		{"bare prefix", "0x", "", true},
		{"not a number", "abc", "", true},
		{"nan", "NaN", "", true},
		{"infinity", "Infinity", "", true},
		{"invalid hex digits", "0xzz", "", true},
		{"sign after prefix", "0x-5", "", true},
		{"wider than 256 bits", "0x1" + strings.Repeat("0", 64), "0x1" + strings.Repeat("0", 64), false},
		{"decimal wider than 256 bits", "1e80", "0x35f9dea3e1f6bdfef70cdd17b25efa418ca63a22764cec100000000000000000000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHex(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.CodeCoercionFailed, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToDecimal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"integer", "42", "42", false},
		{"hex", "0xff", "255", false},
		{"large hex", "0x2a92f0f860bf7c63fb9ef42cff4137006b309e0e6e1484e42d0b5511959414d",
			"1203547651708349271448768365881041305352887755542740175005943917204658012493", false},
		{"exponent has no exponent in output", "1e21", "1000000000000000000000", false},
		{"hex wider than 256 bits", "0x1" + strings.Repeat("0", 64),
			"115792089237316195423570985008687907853269984665640564039457584007913129639936", false},
		{"trailing zeros", "1.500", "1.5", false},
		{"negative fraction", "-0.25", "-0.25", false},
		{"zero", "0.000", "0", false},
		{"negative zero", "-0", "0", false},
		{"nan", "NaN", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToDecimal(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToBoolean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "true"},
		{"0x1", "true"},
		{"-3", "true"},
		{"0", "false"},
		{"0x0", "false"},
		{"0.0", "false"},
		{"yes", "false"},
		{"abc", "false"},
		{"", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToBoolean(tt.in))
		})
	}
}

func TestParseInteger_ScalesExponent(t *testing.T) {
	n, err := ParseInteger("12e2")
	require.NoError(t, err)
	assert.Equal(t, "1200", n.String())
}
