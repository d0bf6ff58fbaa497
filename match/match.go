// Package match provides file name matchers used by directory searches.
//
// Three matchers are available. NewRegex compiles a regular expression as
// given. NewGlob translates the simple glob dialect ('*' and '?') to a regular
// expression anchored at the end of the name. NewExtendedGlob accepts full
// shell glob syntax including character classes and alternation.
//
// A pattern that fails to compile never panics; the failure is logged and
// the resulting matcher rejects every name.
package match

import (
	"regexp"
	"strings"

	"github.com/gobwas/glob"

	"github.com/jmgilman/go/fsio/logging"
)

// Matcher reports whether a file name is selected.
type Matcher interface {
	Match(name string) bool
}

// Func adapts an ordinary function to the Matcher interface.
type Func func(name string) bool

// Match calls f(name).
func (f Func) Match(name string) bool { return f(name) }

// Regex matches names against a compiled regular expression.
type Regex struct {
	pattern string
	re      *regexp.Regexp
	err     error
}

// NewRegex compiles pattern. On failure the error is logged and the returned
// matcher never matches.
func NewRegex(pattern string, logger *logging.Logger) *Regex {
	re, err := regexp.Compile(pattern)
	if err != nil {
		logger.Error("regex compile failed", "pattern", pattern, "error", err)
	}
	return &Regex{pattern: pattern, re: re, err: err}
}

// NewGlob translates glob into a regular expression and compiles it. A '.'
// matches a literal dot, '*' any sequence, '?' any single character and every
// other character itself. The expression is anchored at the end of the name
// only, so "*.txt" also selects "a.b.txt" but never "a.txt.bak".
func NewGlob(pattern string, logger *logging.Logger) *Regex {
	r := NewRegex(GlobToRegex(pattern), logger)
	r.pattern = pattern
	return r
}

// GlobToRegex returns the end-anchored regular expression equivalent of a
// simple glob.
func GlobToRegex(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) + 8)
	for _, r := range pattern {
		switch r {
		case '.':
			b.WriteString(`\.`)
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteByte('.')
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteByte('$')
	return b.String()
}

// Match reports whether name matches. It is always false when compilation
// failed.
func (m *Regex) Match(name string) bool {
	if m == nil || m.re == nil {
		return false
	}
	return m.re.MatchString(name)
}

// Pattern returns the pattern the matcher was created from.
func (m *Regex) Pattern() string { return m.pattern }

// Err returns the compile error, if any.
func (m *Regex) Err() error { return m.err }

// ExtendedGlob matches names with shell glob syntax.
type ExtendedGlob struct {
	pattern string
	g       glob.Glob
	err     error
}

// NewExtendedGlob compiles a shell glob supporting '*', '?', "[abc]", "[!a-z]"
// and "{a,b}". The whole name must match. On failure the error is logged and
// the returned matcher never matches.
func NewExtendedGlob(pattern string, logger *logging.Logger) *ExtendedGlob {
	g, err := glob.Compile(pattern)
	if err != nil {
		logger.Error("glob compile failed", "pattern", pattern, "error", err)
	}
	return &ExtendedGlob{pattern: pattern, g: g, err: err}
}

// Match reports whether name matches.
func (m *ExtendedGlob) Match(name string) bool {
	if m == nil || m.g == nil {
		return false
	}
	return m.g.Match(name)
}

// Pattern returns the pattern the matcher was created from.
func (m *ExtendedGlob) Pattern() string { return m.pattern }

// Err returns the compile error, if any.
func (m *ExtendedGlob) Err() error { return m.err }

// Literal returns an extended glob that matches name exactly, escaping any
// glob metacharacters it contains.
func Literal(name string, logger *logging.Logger) *ExtendedGlob {
	return NewExtendedGlob(glob.QuoteMeta(name), logger)
}
