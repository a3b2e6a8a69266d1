package bot

import (
	"fmt"
	"time"

	"github.com/infinigence/octochat/pkg/matcher"
	"github.com/jonboulle/clockwork"
)

const (
	DefaultTimeLayout   = time.RFC1123Z
	DefaultTimeTemplate = "It's currently %s"
)

// TimeResponder answers with the current time whenever Matcher matches.
// The clock is injected so the answer is reproducible in tests.
type TimeResponder struct {
	Matcher  matcher.Matcher
	Clock    clockwork.Clock
	Location *time.Location // nil means the clock's own location
	Layout   string         // defaults to DefaultTimeLayout
	Template string         // fmt template with a single %s, defaults to DefaultTimeTemplate
}

var _ Responder = (*TimeResponder)(nil)

func NewTimeResponder(m matcher.Matcher, clock clockwork.Clock) *TimeResponder {
	return &TimeResponder{
		Matcher:  m,
		Clock:    clock,
		Layout:   DefaultTimeLayout,
		Template: DefaultTimeTemplate,
	}
}

func (r *TimeResponder) Respond(text string) (string, bool) {
	if !r.Matcher.Match(text) {
		return "", false
	}

	clock := r.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	now := clock.Now()
	if r.Location != nil {
		now = now.In(r.Location)
	}

	layout := r.Layout
	if layout == "" {
		layout = DefaultTimeLayout
	}
	tmpl := r.Template
	if tmpl == "" {
		tmpl = DefaultTimeTemplate
	}
	return fmt.Sprintf(tmpl, now.Format(layout)), true
}
