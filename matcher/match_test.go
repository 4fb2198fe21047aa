package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/dappreg/coerce"
	"github.com/jmgilman/dappreg/errors"
)

const rawTrace = `Error in the called contract (0x2a92f0f860bf7c63fb9ef42cff4137006b309e0e6e1484e42d0b5511959414d):
Error at pc=0:15:
Error message: OrderTracker: order is not tradable
Error code: 0x1f
Owner: 0x00ABC
Reason: 0x4e6f7420656e6f756768
Cairo traceback (most recent call last):
Unknown location (pc=0:495)
`

func TestExtractValue(t *testing.T) {
	tests := []struct {
		name      string
		extractor Extractor
		want      string
		wantCode  errors.ErrorCode
	}{
		{"decimal", Extractor{Matcher: `/Error code: (\w+)/`, Type: coerce.TypeDecimal}, "31", ""},
		{"address", Extractor{Matcher: `/Owner: (\w+)/`, Type: coerce.TypeAddress}, "0xabc", ""},
		{"string decodes", Extractor{Matcher: `/Reason: (\w+)/`}, "Not enough", ""},
		{"string keeps raw", Extractor{Matcher: `/Error message: (.*)\n/`}, "OrderTracker: order is not tradable", ""},
		{"no match captures empty", Extractor{Matcher: `/Missing: (\w+)/`}, "", ""},
		{"no match fails typed", Extractor{Matcher: `/Missing: (\w+)/`, Type: coerce.TypeHex}, "", errors.CodeCoercionFailed},
		{"no match renders boolean false", Extractor{Matcher: `/Missing: (\w+)/`, Type: coerce.TypeBoolean}, "false", ""},
		{"broken pattern", Extractor{Matcher: `/(/`}, "", errors.CodePatternInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractValue(tt.extractor, rawTrace)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		message string
		want    string
	}{
		{"in order", []string{"a", "b"}, "{{1}}-{{2}}", "a-b"},
		{"missing value kept", []string{"a"}, "{{1}}-{{2}}", "a-{{2}}"},
		{"repeated", []string{"first", "second"}, "{{1}} {{2}} {{1}}", "first second first"},
		{"adjacent", []string{"one", "two", "three"}, "{{1}}{{2}}{{3}}", "onetwothree"},
		{"zero is not an ordinal", []string{"a"}, "{{0}}", "{{0}}"},
		{"no placeholders", []string{"a"}, "plain", "plain"},
		{"malformed placeholder", []string{"a"}, "{{x}} {1}", "{{x}} {1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.values, tt.message))
		})
	}
}

func TestMessage(t *testing.T) {
	t.Run("no match", func(t *testing.T) {
		msg, ok, err := Message(ErrorMatcher{Matcher: "/Insufficient balance/", Message: "Not enough funds"}, rawTrace)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, msg)
	})

	t.Run("match without extractors", func(t *testing.T) {
		msg, ok, err := Message(ErrorMatcher{Matcher: "/order is not tradable/", Message: "This order can no longer be filled"}, rawTrace)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "This order can no longer be filled", msg)
	})

	t.Run("match with extractors", func(t *testing.T) {
		m := ErrorMatcher{
			Matcher: "/order is not tradable/",
			Message: "Order rejected by {{1}} with code {{2}}",
			Extractors: []Extractor{
				{Matcher: `/Owner: (\w+)/`, Type: coerce.TypeAddress},
				{Matcher: `/Error code: (\w+)/`, Type: coerce.TypeDecimal},
			},
		}

		msg, ok, err := Message(m, rawTrace)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Order rejected by 0xabc with code 31", msg)
	})

	t.Run("empty message is no match", func(t *testing.T) {
		_, ok, err := Message(ErrorMatcher{Matcher: "/order/", Message: ""}, rawTrace)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("multiline descriptor", func(t *testing.T) {
		m := ErrorMatcher{Matcher: "/Error at pc=0:15:\nError message: (.*)/", Message: "matched"}
		_, ok, err := Message(m, rawTrace)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("coercion failure propagates", func(t *testing.T) {
		m := ErrorMatcher{
			Matcher:    "/order/",
			Message:    "{{1}}",
			Extractors: []Extractor{{Matcher: `/Error message: (.*)\n/`, Type: coerce.TypeAddress}},
		}
		_, _, err := Message(m, rawTrace)
		require.Error(t, err)
		assert.Equal(t, errors.CodeCoercionFailed, errors.GetCode(err))
	})

	t.Run("pattern failure propagates", func(t *testing.T) {
		_, _, err := Message(ErrorMatcher{Matcher: "/[/", Message: "x"}, rawTrace)
		require.Error(t, err)
		assert.Equal(t, errors.CodePatternInvalid, errors.GetCode(err))
	})
}

func TestProcessMatchers(t *testing.T) {
	matchers := []ErrorMatcher{
		{Matcher: "/Insufficient balance/", Message: "first"},
		{Matcher: "/not tradable/", Message: "second"},
		{Matcher: "/OrderTracker/", Message: "third"},
	}

	msg, ok, err := ProcessMatchers(rawTrace, matchers)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", msg)

	_, ok, err = ProcessMatchers(rawTrace, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProcessError(t *testing.T) {
	table := Table{
		DefaultKey: {
			{Matcher: "/not tradable/", Message: "default message"},
		},
		"fill_order": {
			{Matcher: "/not tradable/", Message: "fill_order message"},
		},
		"cancel_order": {
			{Matcher: "/not tradable/", Message: "cancel_order message"},
		},
		"empty": {},
	}

	tests := []struct {
		name        string
		entrypoints []string
		want        string
	}{
		{"no entrypoints uses default", nil, "default message"},
		{"entrypoint wins over default", []string{"fill_order"}, "fill_order message"},
		{"entrypoints tried in order", []string{"cancel_order", "fill_order"}, "cancel_order message"},
		{"unknown entrypoint skipped", []string{"approve", "fill_order"}, "fill_order message"},
		{"empty list skipped", []string{"empty"}, "default message"},
		{"default is not an entrypoint", []string{DefaultKey}, "default message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok, err := ProcessError(rawTrace, table, tt.entrypoints...)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, msg)
		})
	}
}

func TestProcessError_FallsThroughToDefault(t *testing.T) {
	table := Table{
		DefaultKey:   {{Matcher: "/OrderTracker/", Message: "default message"}},
		"fill_order": {{Matcher: "/Insufficient balance/", Message: "unused"}},
	}

	msg, ok, err := ProcessError(rawTrace, table, "fill_order")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "default message", msg)
}

func TestProcessError_NoMatch(t *testing.T) {
	table := Table{DefaultKey: {{Matcher: "/Insufficient balance/", Message: "unused"}}}

	msg, ok, err := ProcessError(rawTrace, table, "fill_order")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, msg)
}

func TestScope(t *testing.T) {
	assert.Equal(t, "project:myswap/router", ProjectScope("myswap", "router").String())
	assert.Equal(t, "interface:erc20", InterfaceScope("erc20").String())
	assert.Equal(t, "default", DefaultScope().String())
	assert.True(t, DefaultScope().IsDefault())
	assert.False(t, InterfaceScope("erc20").IsDefault())
}
