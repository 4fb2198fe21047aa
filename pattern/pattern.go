package pattern

import (
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jmgilman/dappreg/errors"
)

// DefaultCacheSize is the number of compiled descriptors kept by a Compiler
// created without WithCacheSize.
const DefaultCacheSize = 512

// descriptorMatcher splits a descriptor into its body and flags. The body is
// greedy so the last slash always starts the flags segment.
var descriptorMatcher = regexp.MustCompile(`^/([\s\S]*)/([a-z]*)$`)

// Compiler compiles descriptors and caches the results.
type Compiler struct {
	cache *lru.Cache[string, *regexp.Regexp]
}

// Option configures a Compiler.
type Option func(*options)

type options struct {
	cacheSize int
}

// WithCacheSize sets the maximum number of cached expressions.
// Non-positive sizes fall back to DefaultCacheSize.
func WithCacheSize(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// NewCompiler creates a Compiler.
func NewCompiler(opts ...Option) (*Compiler, error) {
	o := options{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cacheSize <= 0 {
		o.cacheSize = DefaultCacheSize
	}

	cache, err := lru.New[string, *regexp.Regexp](o.cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to create pattern cache")
	}

	return &Compiler{cache: cache}, nil
}

// Compile returns the expression described by descriptor, compiling it on a
// cache miss. Failures carry CodePatternInvalid.
func (c *Compiler) Compile(descriptor string) (*regexp.Regexp, error) {
	if re, ok := c.cache.Get(descriptor); ok {
		return re, nil
	}

	re, err := compile(descriptor)
	if err != nil {
		return nil, err
	}

	c.cache.Add(descriptor, re)
	return re, nil
}

// Len returns the number of cached expressions.
func (c *Compiler) Len() int {
	return c.cache.Len()
}

var defaultCompiler = func() *Compiler {
	c, err := NewCompiler()
	if err != nil {
		panic(err)
	}
	return c
}()

// Compile compiles descriptor using the package-level cache.
func Compile(descriptor string) (*regexp.Regexp, error) {
	return defaultCompiler.Compile(descriptor)
}

// FirstCapture returns the first capture group of the leftmost match of re in
// text. The boolean is false when re does not match. A match without a first
// group yields an empty string.
func FirstCapture(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	if len(m) < 2 {
		return "", true
	}
	return m[1], true
}

func compile(descriptor string) (*regexp.Regexp, error) {
	normalized := strings.ReplaceAll(descriptor, "\n", `\n`)

	parts := descriptorMatcher.FindStringSubmatch(normalized)
	if parts == nil {
		return nil, errors.WithContext(
			errors.New(errors.CodePatternInvalid, "descriptor must have the form /body/flags"),
			"descriptor", descriptor,
		)
	}
	body, flags := parts[1], parts[2]

	prefix, anchored, err := parseFlags(flags)
	if err != nil {
		return nil, errors.WithContext(err, "descriptor", descriptor)
	}

	expr := body
	if anchored {
		expr = `\A(?:` + expr + `)`
	}
	expr = prefix + expr

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodePatternInvalid,
			"pattern body is not a valid expression",
			map[string]interface{}{"descriptor": descriptor},
		)
	}

	return re, nil
}

// parseFlags converts a flags segment into an inline flag group. It reports
// whether the expression must be anchored at the start of the input.
func parseFlags(flags string) (string, bool, error) {
	var (
		seen     = make(map[rune]bool, len(flags))
		inline   strings.Builder
		anchored bool
	)

	for _, f := range flags {
		if seen[f] {
			return "", false, errors.Newf(errors.CodePatternInvalid, "duplicate flag %q", f)
		}
		seen[f] = true

		switch f {
		case 'i', 'm':
			inline.WriteRune(f)
		case 'y':
			anchored = true
		case 'g':
		default:
			return "", false, errors.Newf(errors.CodePatternInvalid, "unsupported flag %q", f)
		}
	}

	if inline.Len() == 0 {
		return "", anchored, nil
	}
	return "(?" + inline.String() + ")", anchored, nil
}
