package coerce

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/dappreg/errors"
)

func TestFormatByType(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		typ     Type
		want    string
		wantErr bool
	}{
		{"address from hex", "0x00ABC", TypeAddress, "0xabc", false},
		{"address from decimal", "2748", TypeAddress, "0xabc", false},
		{"address too long", "0x1" + strings.Repeat("0", 64), TypeAddress, "", true},
		{"negative address", "-1", TypeAddress, "", true},
		{"address from text", "owner", TypeAddress, "", true},
		{"hex", "255", TypeHex, "0xff", false},
		{"hex from empty capture", "", TypeHex, "", true},
		{"decimal", "0x3e8", TypeDecimal, "1000", false},
		{"decimal from text", "amount", TypeDecimal, "", true},
		{"boolean true", "0x1", TypeBoolean, "true", false},
		{"boolean false", "0", TypeBoolean, "false", false},
		{"boolean from text", "maybe", TypeBoolean, "false", false},
		{"boolean from empty capture", "", TypeBoolean, "false", false},
		{"string decodes hex", "0x4f4b", TypeString, "OK", false},
		{"string keeps control characters", "0x4f4b0a", TypeString, "OK\n", false},
		{"string decodes list", "[0x4f4b, 0x4e4f]", TypeString, "OK NO", false},
		{"string keeps undecodable list", "[0x4f4b, 0xff]", TypeString, "[0x4f4b, 0xff]", false},
		{"string keeps raw text", "Insufficient balance", TypeString, "Insufficient balance", false},
		{"string keeps empty", "", TypeString, "", false},
		{"absent type behaves as string", "0x4f4b", "", "OK", false},
		{"unknown type behaves as string", "0x4f4b", "felt", "OK", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatByType(tt.value, tt.typ)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.CodeCoercionFailed, errors.GetCode(err))
				assert.False(t, errors.IsRecoverable(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatByType_AddressIsStable(t *testing.T) {
	for _, raw := range []string{"0x0000ABC", "2748", "0x2a92f0f860bf7c63fb9ef42cff4137006b309e0e6e1484e42d0b5511959414d"} {
		once, err := FormatByType(raw, TypeAddress)
		require.NoError(t, err)

		twice, err := FormatByType(once, TypeAddress)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestType_Known(t *testing.T) {
	assert.True(t, Type("").Known())
	assert.True(t, TypeDecimal.Known())
	assert.False(t, Type("felt").Known())
}
