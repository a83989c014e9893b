package match

import (
	"fmt"
	"regexp"
)

// Regexp returns a matcher that accepts string arguments matching the
// pattern. Non-string arguments never match. An invalid pattern yields a
// matcher that never matches and carries the compile error in its
// description instead of failing construction.
func Regexp(pattern string) Matcher {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return neverMatcher{desc: fmt.Sprintf("Regexp(%q): %v", pattern, err)}
	}
	return regexpMatcher{re: re}
}

type regexpMatcher struct {
	re *regexp.Regexp
}

func (m regexpMatcher) Matches(actual any) bool {
	s, ok := actual.(string)
	if !ok {
		return false
	}
	return m.re.MatchString(s)
}

func (m regexpMatcher) String() string {
	return fmt.Sprintf("Regexp(%q)", m.re.String())
}
