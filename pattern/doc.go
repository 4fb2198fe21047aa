// Package pattern compiles textual pattern descriptors into regular
// expressions.
//
// A descriptor has the form "/body/flags". Matcher tables are authored as
// JSON documents, so the body is written with JavaScript-style escapes and
// may contain real newline characters, which are normalized to the two
// character escape \n before compilation. The flags segment must match
// [gimy]* with no repeated flag:
//
//	i  case-insensitive matching
//	m  ^ and $ match at line boundaries
//	y  the match must start at the beginning of the input
//	g  accepted for compatibility; it has no effect on testing or capturing
//
// Compiled expressions are cached by descriptor in a bounded LRU cache.
// Descriptors are immutable data, so a cached entry is always equal to a
// fresh compilation and a Compiler is safe for concurrent use.
//
// Basic usage:
//
//	re, err := pattern.Compile(`/Error message: (.*)\n/`)
//	if err != nil {
//	    return err
//	}
//	capture, ok := pattern.FirstCapture(re, raw)
package pattern
