package matcher

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Unicode letters, digits and '_' are word characters.
const (
	wordChar = `[\p{L}\p{N}_]`
	nonWord  = `[^\p{L}\p{N}_]`
)

// Pattern tests a compiled regular expression for presence anywhere in the input.
type Pattern struct {
	desc string
	re   *regexp.Regexp
}

var _ Matcher = (*Pattern)(nil)

func (p *Pattern) Match(text string) bool {
	return p.re.MatchString(text)
}

func (p *Pattern) String() string {
	return p.desc
}

// Regexp returns the compiled expression backing p.
func (p *Pattern) Regexp() *regexp.Regexp {
	return p.re
}

// Word matches w as a whole word, case-insensitively. w is taken literally
// and each edge of it must sit on a word boundary, as with \b: a word
// character edge needs a non-word neighbour or the end of the input, a
// non-word edge needs a word character neighbour. So "cat" does not match
// "category", and "?" does not match "is it?" where nothing follows it.
//
// Whitespace inside w matches any run of whitespace in the input, so
// "extra credit" also matches "extra   credit".
func Word(w string) Expr {
	fields := strings.Fields(w)
	if len(fields) == 0 {
		return Expr{Matcher: Never}
	}
	phrase := strings.Join(fields, " ")
	for i, f := range fields {
		fields[i] = regexp.QuoteMeta(f)
	}

	var sb strings.Builder
	sb.WriteString("(?i)")
	if first, _ := utf8.DecodeRuneInString(phrase); isWordRune(first) {
		sb.WriteString("(?:^|" + nonWord + ")")
	} else {
		sb.WriteString(wordChar)
	}
	sb.WriteString(strings.Join(fields, `\s+`))
	if last, _ := utf8.DecodeLastRuneInString(phrase); isWordRune(last) {
		sb.WriteString("(?:$|" + nonWord + ")")
	} else {
		sb.WriteString(wordChar)
	}
	return Expr{Matcher: &Pattern{
		desc: fmt.Sprintf("word(%s)", phrase),
		re:   regexp.MustCompile(sb.String()),
	}}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Text matches s as a literal, case-sensitive substring.
func Text(s string) Expr {
	return Expr{Matcher: &Pattern{
		desc: fmt.Sprintf("text(%q)", s),
		re:   regexp.MustCompile(regexp.QuoteMeta(s)),
	}}
}

// FromPattern compiles a raw RE2 pattern. It is the only fallible way to
// build a Pattern.
func FromPattern(p string) (Expr, error) {
	re, err := regexp.Compile(p)
	if err != nil {
		return Expr{}, &PatternError{Pattern: p, Err: err}
	}
	return Expr{Matcher: &Pattern{
		desc: fmt.Sprintf("regex(%s)", p),
		re:   re,
	}}, nil
}

func MustPattern(p string) Expr {
	e, err := FromPattern(p)
	if err != nil {
		panic(err)
	}
	return e
}
