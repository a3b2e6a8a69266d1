package matcher

type FixedMatcher bool

var _ Matcher = (FixedMatcher)(false)

func (m FixedMatcher) Match(text string) bool {
	return bool(m)
}

func (m FixedMatcher) String() string {
	if m {
		return "always"
	}
	return "never"
}

const (
	Always = FixedMatcher(true)
	Never  = FixedMatcher(false)
)
