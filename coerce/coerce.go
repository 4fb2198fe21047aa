package coerce

import (
	"strings"

	"github.com/jmgilman/dappreg/address"
	"github.com/jmgilman/dappreg/errors"
)

// Type is the declared type of an extracted value.
type Type string

const (
	TypeString  Type = "string"
	TypeAddress Type = "address"
	TypeHex     Type = "hex"
	TypeDecimal Type = "decimal"
	TypeBoolean Type = "boolean"
)

// Known reports whether t is one of the declared types. The empty type is
// known and behaves as TypeString.
func (t Type) Known() bool {
	switch t {
	case "", TypeString, TypeAddress, TypeHex, TypeDecimal, TypeBoolean:
		return true
	}
	return false
}

// FormatByType renders value according to typ. Unknown and empty types
// behave as TypeString.
func FormatByType(value string, typ Type) (string, error) {
	var (
		result string
		err    error
	)

	switch typ {
	case TypeAddress:
		result, err = ToHex(value)
		if err == nil && !address.IsValid(result) {
			err = errors.New(errors.CodeCoercionFailed, "value is not a valid address")
		}
	case TypeHex:
		result, err = ToHex(value)
	case TypeDecimal:
		result, err = ToDecimal(value)
	case TypeBoolean:
		return ToBoolean(value), nil
	default:
		return formatString(value), nil
	}

	if err != nil {
		return "", errors.WrapWithContext(err, errors.CodeCoercionFailed,
			"unexpected value for type",
			map[string]interface{}{"value": value, "type": string(typ)},
		)
	}
	return result, nil
}

// formatString decodes value as a short string or list of short strings and
// falls back to value itself when decoding fails.
func formatString(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "[") {
		if decoded, err := DecodeShortStringList(value); err == nil {
			return decoded
		}
	}

	decoded, err := DecodeShortString(value)
	if err != nil {
		return value
	}
	return decoded
}
