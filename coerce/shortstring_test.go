package coerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/dappreg/errors"
)

func TestDecodeShortString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"hex", "0x496e73756666696369656e742062616c616e6365", "Insufficient balance", false},
		{"uppercase hex", "0X4F4B", "OK", false},
		{"decimal", "20299", "OK", false},
		{"small decimal", "100", "d", false},
		{"padded decimal", "7", "\a", false},
		{"trailing newline", "0x4f4b0a", "OK\n", false},
		{"odd hex digit count", "0x4f4", "", true},
		{"null byte", "0x00", "\x00", false},
		{"non ascii byte", "0x4f80", "", true},
		{"non ascii decimal", "1000", "", true},
		{"bare prefix", "0x", "", true},
		{"not ascii", "0x4fé", "", true},
		{"plain text", "hello", "", true},
		{"negative", "-1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeShortString(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err))
				assert.True(t, errors.IsRecoverable(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeShortStringList(t *testing.T) {
	got, err := DecodeShortStringList("[0x4f4b, 0x4e4f]")
	require.NoError(t, err)
	assert.Equal(t, "OK NO", got)

	_, err = DecodeShortStringList("[0x4f4b,0x4e4f]")
	require.Error(t, err, "items must be separated by a comma and a space")

	_, err = DecodeShortStringList("[0x4f4b, 0xff]")
	require.Error(t, err)
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsASCII("plain text\n"))
	assert.False(t, IsASCII("café"))

	assert.True(t, IsHex("0x"))
	assert.True(t, IsHex("0XaBc"))
	assert.False(t, IsHex("abc"))

	assert.True(t, IsDecimal("0123"))
	assert.False(t, IsDecimal(""))
	assert.False(t, IsDecimal("12a"))
}
