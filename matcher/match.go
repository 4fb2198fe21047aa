package matcher

import (
	"regexp"
	"strconv"

	"github.com/jmgilman/dappreg/coerce"
	"github.com/jmgilman/dappreg/pattern"
)

var placeholderMatcher = regexp.MustCompile(`\{\{(\d+)\}\}`)

// ExtractValue captures the first group of the extractor's pattern in text
// and coerces it to the extractor's type. A pattern that does not match
// captures the empty string.
func ExtractValue(e Extractor, text string) (string, error) {
	re, err := pattern.Compile(e.Matcher)
	if err != nil {
		return "", err
	}

	capture, _ := pattern.FirstCapture(re, text)
	return coerce.FormatByType(capture, e.Type)
}

// Substitute replaces each {{n}} in message with values[n-1]. Placeholders
// without a corresponding value are left as they are.
func Substitute(values []string, message string) string {
	return placeholderMatcher.ReplaceAllStringFunc(message, func(placeholder string) string {
		n, err := strconv.Atoi(placeholderMatcher.FindStringSubmatch(placeholder)[1])
		if err != nil || n < 1 || n > len(values) {
			return placeholder
		}
		return values[n-1]
	})
}

// Message renders m against raw. The boolean is false when the pattern does
// not match or the rendered message is empty.
func Message(m ErrorMatcher, raw string) (string, bool, error) {
	re, err := pattern.Compile(m.Matcher)
	if err != nil {
		return "", false, err
	}
	if !re.MatchString(raw) {
		return "", false, nil
	}

	if len(m.Extractors) == 0 {
		return m.Message, m.Message != "", nil
	}

	values := make([]string, 0, len(m.Extractors))
	for _, e := range m.Extractors {
		v, err := ExtractValue(e, raw)
		if err != nil {
			return "", false, err
		}
		values = append(values, v)
	}

	msg := Substitute(values, m.Message)
	return msg, msg != "", nil
}

// ProcessMatchers returns the first message rendered by matchers, in order.
func ProcessMatchers(raw string, matchers []ErrorMatcher) (string, bool, error) {
	for _, m := range matchers {
		msg, ok, err := Message(m, raw)
		if err != nil {
			return "", false, err
		}
		if ok {
			return msg, true, nil
		}
	}
	return "", false, nil
}

// ProcessError resolves raw against table. The lists of the given entrypoints
// are tried in the order supplied, followed by the default list.
func ProcessError(raw string, table Table, entrypoints ...string) (string, bool, error) {
	if len(entrypoints) > 0 && table.HasEntrypoints() {
		for _, entrypoint := range entrypoints {
			if entrypoint == DefaultKey {
				continue
			}
			matchers := table[entrypoint]
			if len(matchers) == 0 {
				continue
			}

			msg, ok, err := ProcessMatchers(raw, matchers)
			if err != nil || ok {
				return msg, ok, err
			}
		}
	}

	return ProcessMatchers(raw, table.Default())
}
