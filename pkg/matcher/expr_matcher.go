package matcher

import (
	"strings"
	"sync"
	"sync/atomic"
	"unicode"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/sirupsen/logrus"
)

// ExprMatcher evaluates an expr-lang boolean expression against the input.
//
//	HasWord("teacher") && input contains "computer"
//	"extra" in words && !HasWord("not")
type ExprMatcher struct {
	Code string

	prog *vm.Program
}

// ExprEnv is the environment visible to expressions.
type ExprEnv struct {
	Input string   `expr:"input"`
	Words []string `expr:"words"` // lowercased words of the input
}

var _ Matcher = (*ExprMatcher)(nil)

// FromExpr compiles code. Expressions that do not compile, or that do not
// evaluate to a bool, are reported as a *PatternError.
func FromExpr(code string) (*ExprMatcher, error) {
	prog, err := expr.Compile(code, expr.Env(ExprEnv{}), expr.AsBool())
	if err != nil {
		return nil, &PatternError{Pattern: code, Err: err}
	}
	return &ExprMatcher{Code: code, prog: prog}, nil
}

func (m *ExprMatcher) Match(text string) bool {
	if m.prog == nil {
		logrus.Warnf("[expr-matcher] expr (%s) was not built with FromExpr", m.Code)
		return false
	}
	output, err := expr.Run(m.prog, NewExprEnv(text))
	if err != nil {
		logrus.Warnf("[expr-matcher] run expr (%s) failed: %v", m.Code, err)
		return false
	}
	v, ok := output.(bool)
	if !ok {
		logrus.Warnf("[expr-matcher] expr (%s) invalid return type: %T", m.Code, output)
		return false
	}
	return v
}

func (m *ExprMatcher) String() string {
	return "expr(" + m.Code + ")"
}

func NewExprEnv(text string) ExprEnv {
	return ExprEnv{
		Input: text,
		Words: strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
		}),
	}
}

// HasWord reports whether w occurs in the input as a whole word.
func (env ExprEnv) HasWord(w string) bool {
	return cachedWord(w).Match(env.Input)
}

// maxCachedWords bounds wordCache for expressions that build words from the input.
const maxCachedWords = 1024

var (
	wordCache     sync.Map // string -> Expr
	wordCacheSize atomic.Int64
)

func cachedWord(w string) Expr {
	if e, ok := wordCache.Load(w); ok {
		return e.(Expr)
	}
	e := Word(w)
	if wordCacheSize.Load() < maxCachedWords {
		if _, loaded := wordCache.LoadOrStore(w, e); !loaded {
			wordCacheSize.Add(1)
		}
	}
	return e
}

// HasText reports whether s occurs literally in the input.
func (env ExprEnv) HasText(s string) bool {
	return strings.Contains(env.Input, s)
}
