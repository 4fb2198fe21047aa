// Package coerce renders values captured from raw failure traces according
// to an extractor's declared type.
//
// Captured values are numbers in decimal, hex, or exponent notation, or
// short strings: ASCII text packed into a single field element and printed
// as hex or decimal. FormatByType converts a capture into its display form:
//
//	address  0x-prefixed lowercase hex, validated as an address
//	hex      0x-prefixed lowercase hex
//	decimal  plain base-10 digits without an exponent
//	boolean  "true" for nonzero values, "false" for zero and non-numbers
//	string   decoded short string when possible, otherwise the raw value
//
// Failures of the address, hex and decimal conversions carry CodeCoercionFailed and are meant
// to propagate: a typed extractor that cannot produce a value indicates a
// matcher that does not fit the text. Short-string decoding fails with the
// recoverable CodeDecodeFailed, and the string conversion swallows it by
// returning the raw value.
package coerce
