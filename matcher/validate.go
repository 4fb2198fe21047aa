package matcher

import (
	"sort"
	"strconv"

	"github.com/jmgilman/dappreg/errors"
	"github.com/jmgilman/dappreg/pattern"
)

// Validate checks that every pattern of m compiles, that every extractor
// type is known, and that the placeholders used by the message are exactly
// {{1}}..{{n}} for n extractors.
func (m ErrorMatcher) Validate() error {
	if _, err := pattern.Compile(m.Matcher); err != nil {
		return errors.Wrap(err, errors.CodeInvalidMatcher, "invalid matcher pattern")
	}

	for i, e := range m.Extractors {
		if _, err := pattern.Compile(e.Matcher); err != nil {
			return errors.WrapWithContext(err, errors.CodeInvalidMatcher, "invalid extractor pattern",
				map[string]interface{}{"extractor": i + 1})
		}
		if !e.Type.Known() {
			return errors.WithContextMap(
				errors.Newf(errors.CodeInvalidMatcher, "unknown extractor type %q", e.Type),
				map[string]interface{}{"extractor": i + 1},
			)
		}
	}

	used := make(map[int]bool)
	for _, match := range placeholderMatcher.FindAllStringSubmatch(m.Message, -1) {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			return errors.Wrapf(err, errors.CodeInvalidMatcher, "invalid placeholder %s", match[0])
		}
		used[n] = true
	}

	for n := range used {
		if n < 1 || n > len(m.Extractors) {
			return errors.WithContextMap(
				errors.Newf(errors.CodeInvalidMatcher, "placeholder {{%d}} has no extractor", n),
				map[string]interface{}{"extractors": len(m.Extractors)},
			)
		}
	}
	for n := 1; n <= len(m.Extractors); n++ {
		if !used[n] {
			return errors.Newf(errors.CodeInvalidMatcher, "extractor %d is not used by the message", n)
		}
	}

	return nil
}

// Validate checks every matcher of t and requires the default list.
func (t Table) Validate() error {
	if _, ok := t[DefaultKey]; !ok {
		return errors.New(errors.CodeInvalidMatcher, "table has no default list")
	}

	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		for i, m := range t[key] {
			if err := m.Validate(); err != nil {
				return errors.WithContextMap(err, map[string]interface{}{
					"entrypoint": key,
					"index":      i,
				})
			}
		}
	}

	return nil
}
