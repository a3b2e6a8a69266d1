package bot

import (
	"strings"

	"github.com/infinigence/octochat/pkg/matcher"
	"github.com/sirupsen/logrus"
)

const DefaultExitKeyword = "exit"

// Table is an ordered list of rules. Rules are tried in the order they were
// added and the first one that responds wins.
//
// A Table must not be modified once it is shared; Respond only reads it and
// is safe to call from several goroutines.
type Table struct {
	exitKeyword string
	rules       []Rule
}

type TableOption func(*Table)

// WithExitKeyword sets the keyword that ends a session. Matching is a
// case-insensitive substring test, so "exit" also fires on "the exit sign".
// An empty keyword disables the check.
func WithExitKeyword(keyword string) TableOption {
	return func(t *Table) {
		t.exitKeyword = strings.ToLower(keyword)
	}
}

func NewTable(opts ...TableOption) *Table {
	t := &Table{exitKeyword: DefaultExitKeyword}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Table) AddResponder(m matcher.Matcher, response string) *Table {
	return t.AddRule(&StaticRule{Matcher: m, Response: response})
}

func (t *Table) AddDynamicResponder(r Responder) *Table {
	return t.AddRule(&DynamicRule{Responder: r})
}

func (t *Table) AddRule(r Rule) *Table {
	t.rules = append(t.rules, r)
	return t
}

func (t *Table) Len() int {
	return len(t.rules)
}

// Rules returns a copy of the rules in match order.
func (t *Table) Rules() []Rule {
	return append([]Rule(nil), t.rules...)
}

func (t *Table) ExitKeyword() string {
	return t.exitKeyword
}

// Respond dispatches a single trimmed line of input.
func (t *Table) Respond(input string) Outcome {
	if t.exitKeyword != "" && strings.Contains(strings.ToLower(input), t.exitKeyword) {
		logrus.Debugf("[bot] input contains exit keyword %q", t.exitKeyword)
		return Exit()
	}

	for _, r := range t.rules {
		logrus.Debugf("[bot] going to match rule %s", r.RuleName())
		resp, ok := evaluate(r, input)
		if !ok {
			continue
		}
		logrus.Debugf("[bot] rule %s matched", r.RuleName())
		return Responded(resp)
	}

	logrus.Debugf("[bot] no rule matched")
	return NoMatch()
}
