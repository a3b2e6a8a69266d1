package composer

import (
	"fmt"
	"time"

	"github.com/infinigence/octochat/pkg/bot"
	"github.com/infinigence/octochat/pkg/matcher"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// BuildTable builds the dispatch table described by conf. Any rule that
// fails to build aborts the whole table; pattern errors can be recovered
// with errors.As(err, **matcher.PatternError).
func BuildTable(conf *ConfigFile, clock clockwork.Clock) (*bot.Table, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	loc, err := loadLocation(conf.Bot.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: time_zone: %w", ErrInvalidConfig, err)
	}

	table := bot.NewTable(bot.WithExitKeyword(conf.Bot.EffectiveExitKeyword()))
	for _, ruleConf := range conf.Rules {
		rule, err := buildRuleByConfig(ruleConf, clock, loc)
		if err != nil {
			return nil, fmt.Errorf("failed to build rule %s: %w", ruleConf.Name, err)
		}
		table.AddRule(rule)
	}
	logrus.Debugf("[composer] built table with %d rules", table.Len())
	return table, nil
}

func buildRuleByConfig(ruleConf *RuleConfig, clock clockwork.Clock, loc *time.Location) (bot.Rule, error) {
	if ruleConf.Response != "" && ruleConf.Dynamic != "" {
		return nil, fmt.Errorf("%w: response and dynamic are mutually exclusive", ErrInvalidRule)
	}

	m, err := BuildMatcher(ruleConf.Match)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("[composer] rule %s matches %s", ruleConf.Name, m)

	switch ruleConf.Dynamic {
	case "":
		return &bot.StaticRule{
			Name:     ruleConf.Name,
			Matcher:  m,
			Response: ruleConf.Response,
		}, nil
	case DynamicTime:
		tr := bot.NewTimeResponder(m, clock)
		tr.Location = loc
		if ruleConf.TimeLayout != "" {
			tr.Layout = ruleConf.TimeLayout
		}
		if ruleConf.TimeTemplate != "" {
			tr.Template = ruleConf.TimeTemplate
		}
		return &bot.DynamicRule{Name: ruleConf.Name, Responder: tr}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDynamic, ruleConf.Dynamic)
	}
}

// BuildMatcher turns a match tree into a matcher. Each node must set
// exactly one of its fields.
func BuildMatcher(mc *MatchConfig) (matcher.Matcher, error) {
	if mc == nil {
		return nil, fmt.Errorf("%w: empty match node", ErrInvalidMatch)
	}
	if n := mc.setFields(); n != 1 {
		return nil, fmt.Errorf("%w: a match node needs exactly one of word, text, regex, expr, all, any, not (got %d)", ErrInvalidMatch, n)
	}

	switch {
	case mc.Word != nil:
		return matcher.Word(*mc.Word), nil
	case mc.Text != nil:
		return matcher.Text(*mc.Text), nil
	case mc.Regex != nil:
		m, err := matcher.FromPattern(*mc.Regex)
		if err != nil {
			return nil, err
		}
		return m, nil
	case mc.Expr != nil:
		m, err := matcher.FromExpr(*mc.Expr)
		if err != nil {
			return nil, err
		}
		return m, nil
	case mc.Not != nil:
		inner, err := BuildMatcher(mc.Not)
		if err != nil {
			return nil, fmt.Errorf("not: %w", err)
		}
		return matcher.Not(inner), nil
	case mc.All != nil:
		children, err := buildMatchers("all", mc.All)
		if err != nil {
			return nil, err
		}
		return matcher.All(children...), nil
	default:
		children, err := buildMatchers("any", mc.Any)
		if err != nil {
			return nil, err
		}
		return matcher.Any(children...), nil
	}
}

func buildMatchers(op string, confs []*MatchConfig) ([]matcher.Matcher, error) {
	ms := make([]matcher.Matcher, 0, len(confs))
	for i, c := range confs {
		m, err := BuildMatcher(c)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", op, i, err)
		}
		ms = append(ms, m)
	}
	return ms, nil
}

func (mc *MatchConfig) setFields() int {
	n := 0
	for _, set := range []bool{
		mc.Word != nil, mc.Text != nil, mc.Regex != nil, mc.Expr != nil,
		mc.All != nil, mc.Any != nil, mc.Not != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

func loadLocation(name string) (*time.Location, error) {
	switch name {
	case "", "Local":
		return nil, nil
	default:
		return time.LoadLocation(name)
	}
}
