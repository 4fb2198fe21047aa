package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/dappreg/coerce"
	"github.com/jmgilman/dappreg/errors"
)

func TestErrorMatcher_Validate(t *testing.T) {
	extractor := Extractor{Matcher: `/code: (\d+)/`, Type: coerce.TypeDecimal}

	tests := []struct {
		name    string
		matcher ErrorMatcher
		wantErr bool
	}{
		{"no placeholders", ErrorMatcher{Matcher: "/boom/", Message: "Boom"}, false},
		{"placeholders match extractors", ErrorMatcher{
			Matcher: "/boom/", Message: "{{2}} then {{1}}", Extractors: []Extractor{extractor, extractor},
		}, false},
		{"repeated placeholder", ErrorMatcher{
			Matcher: "/boom/", Message: "{{1}} {{1}}", Extractors: []Extractor{extractor},
		}, false},
		{"placeholder without extractor", ErrorMatcher{Matcher: "/boom/", Message: "{{1}}"}, true},
		{"zero placeholder", ErrorMatcher{
			Matcher: "/boom/", Message: "{{0}}", Extractors: []Extractor{extractor},
		}, true},
		{"unused extractor", ErrorMatcher{
			Matcher: "/boom/", Message: "{{1}}", Extractors: []Extractor{extractor, extractor},
		}, true},
		{"broken matcher", ErrorMatcher{Matcher: "/(/", Message: "x"}, true},
		{"broken extractor", ErrorMatcher{
			Matcher: "/boom/", Message: "{{1}}", Extractors: []Extractor{{Matcher: "no delimiters"}},
		}, true},
		{"unknown type", ErrorMatcher{
			Matcher: "/boom/", Message: "{{1}}", Extractors: []Extractor{{Matcher: "/(x)/", Type: "felt"}},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.matcher.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.CodeInvalidMatcher, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTable_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		table := Table{
			DefaultKey: {},
			"swap":     {{Matcher: "/slippage/", Message: "Price moved"}},
		}
		require.NoError(t, table.Validate())
	})

	t.Run("missing default", func(t *testing.T) {
		table := Table{"swap": {{Matcher: "/slippage/", Message: "Price moved"}}}
		err := table.Validate()
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidMatcher, errors.GetCode(err))
	})

	t.Run("invalid matcher reports location", func(t *testing.T) {
		table := Table{
			DefaultKey: {},
			"swap":     {{Matcher: "/ok/", Message: "ok"}, {Matcher: "/ok/", Message: "{{1}}"}},
		}
		err := table.Validate()
		require.Error(t, err)

		var platformErr errors.PlatformError
		require.True(t, errors.As(err, &platformErr))
		assert.Equal(t, "swap", platformErr.Context()["entrypoint"])
		assert.Equal(t, 1, platformErr.Context()["index"])
	})
}
