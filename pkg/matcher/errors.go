package matcher

import "fmt"

// PatternError reports a pattern or expression that cannot be compiled.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Err.Error())
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
