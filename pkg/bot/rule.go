package bot

import "github.com/infinigence/octochat/pkg/matcher"

// Rule is either a *StaticRule or a *DynamicRule.
type Rule interface {
	RuleName() string
	isRule()
}

// Responder computes a response from the input, or reports that it has none.
type Responder interface {
	Respond(text string) (string, bool)
}

type ResponderFunc func(text string) (string, bool)

func (f ResponderFunc) Respond(text string) (string, bool) {
	return f(text)
}

type StaticRule struct {
	Name     string // optional name for logging
	Matcher  matcher.Matcher
	Response string
}

type DynamicRule struct {
	Name      string // optional name for logging
	Responder Responder
}

var (
	_ Rule = (*StaticRule)(nil)
	_ Rule = (*DynamicRule)(nil)
)

func (r *StaticRule) RuleName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Matcher.String()
}

func (r *DynamicRule) RuleName() string {
	if r.Name != "" {
		return r.Name
	}
	return "dynamic"
}

func (*StaticRule) isRule()  {}
func (*DynamicRule) isRule() {}

// evaluate returns the response of r for text, if any.
func evaluate(r Rule, text string) (string, bool) {
	switch r := r.(type) {
	case *StaticRule:
		if r.Matcher.Match(text) {
			return r.Response, true
		}
		return "", false
	case *DynamicRule:
		return r.Responder.Respond(text)
	default:
		return "", false
	}
}
