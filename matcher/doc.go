// Package matcher renders human-readable messages from raw contract failure
// traces using tables of pattern matchers.
//
// An ErrorMatcher pairs a pattern descriptor with a message template. When
// the pattern matches the raw trace, the template is rendered, with the
// placeholders {{1}}..{{n}} replaced by the values its extractors capture
// from the trace:
//
//	{
//	  "matcher": "/Error message: Insufficient balance/",
//	  "message": "Balance {{1}} is too low",
//	  "extractors": [{"matcher": "/balance: (\\d+)/", "type": "decimal"}]
//	}
//
// A Table groups matcher lists by entrypoint name, plus the reserved
// "default" list. ProcessError tries the lists of the supplied entrypoints in
// order, then the default list, and returns the first rendered message.
//
// Tables are plain data and are never modified during matching, so a Table
// may be shared between goroutines.
package matcher
