package matcher

import "fmt"

// Matcher is a pure predicate over a single line of input.
// The input is expected to be trimmed of its line terminator.
type Matcher interface {
	Match(text string) bool
	String() string
}

type MatchFunc func(text string) bool

var _ Matcher = (MatchFunc)(nil)

func (f MatchFunc) Match(text string) bool {
	return f(text)
}

func (f MatchFunc) String() string {
	return "func"
}

type AndMatcher struct {
	Left  Matcher
	Right Matcher
}

var _ Matcher = (*AndMatcher)(nil)

func (m *AndMatcher) Match(text string) bool {
	return m.Left.Match(text) && m.Right.Match(text)
}

func (m *AndMatcher) String() string {
	return fmt.Sprintf("(%s & %s)", m.Left, m.Right)
}

type OrMatcher struct {
	Left  Matcher
	Right Matcher
}

var _ Matcher = (*OrMatcher)(nil)

func (m *OrMatcher) Match(text string) bool {
	return m.Left.Match(text) || m.Right.Match(text)
}

func (m *OrMatcher) String() string {
	return fmt.Sprintf("(%s | %s)", m.Left, m.Right)
}

type NotMatcher struct {
	Inner Matcher
}

var _ Matcher = (*NotMatcher)(nil)

func (m *NotMatcher) Match(text string) bool {
	return !m.Inner.Match(text)
}

func (m *NotMatcher) String() string {
	return fmt.Sprintf("!%s", m.Inner)
}

func And(a, b Matcher) Matcher {
	return &AndMatcher{Left: a, Right: b}
}

func Or(a, b Matcher) Matcher {
	return &OrMatcher{Left: a, Right: b}
}

func Not(a Matcher) Matcher {
	return &NotMatcher{Inner: a}
}

// All folds ms into a left-leaning chain of AndMatcher nodes.
// An empty list matches everything.
func All(ms ...Matcher) Matcher {
	if len(ms) == 0 {
		return Always
	}
	r := ms[0]
	for _, m := range ms[1:] {
		r = And(r, m)
	}
	return r
}

// Any folds ms into a left-leaning chain of OrMatcher nodes.
// An empty list matches nothing.
func Any(ms ...Matcher) Matcher {
	if len(ms) == 0 {
		return Never
	}
	r := ms[0]
	for _, m := range ms[1:] {
		r = Or(r, m)
	}
	return r
}

// Expr wraps a Matcher with chaining helpers. The string arguments of And
// and Or are turned into whole-word matchers.
//
//	matcher.Word("who").Or("what").And("you")
type Expr struct {
	Matcher
}

func Wrap(m Matcher) Expr {
	if e, ok := m.(Expr); ok {
		return e
	}
	return Expr{Matcher: m}
}

func (e Expr) And(word string) Expr {
	return e.AndMatch(Word(word))
}

func (e Expr) Or(word string) Expr {
	return e.OrMatch(Word(word))
}

func (e Expr) AndMatch(m Matcher) Expr {
	return Expr{Matcher: And(e.Matcher, unwrap(m))}
}

func (e Expr) OrMatch(m Matcher) Expr {
	return Expr{Matcher: Or(e.Matcher, unwrap(m))}
}

func (e Expr) Not() Expr {
	return Expr{Matcher: Not(e.Matcher)}
}

func unwrap(m Matcher) Matcher {
	if e, ok := m.(Expr); ok {
		return e.Matcher
	}
	return m
}
