package filter

import (
	"regexp"
	"strings"
	"sync"
)

// Matcher reports whether a wildcard pattern matches a candidate string.
// Patterns use `*` to match any run of characters; everything else is
// literal. Matching is anchored and case-insensitive.
type Matcher interface {
	Matches(pattern, candidate string) bool
}

// globMatcher compiles patterns to anchored regular expressions and
// memoizes the compiled form per pattern. Safe for concurrent use.
type globMatcher struct {
	mu    sync.RWMutex
	cache map[string]*regexp.Regexp
}

// NewGlobMatcher returns the default memoizing Matcher.
func NewGlobMatcher() Matcher {
	return &globMatcher{cache: make(map[string]*regexp.Regexp)}
}

// Matches implements Matcher.
func (g *globMatcher) Matches(pattern, candidate string) bool {
	re := g.compiled(pattern)
	if re == nil {
		return false
	}
	return re.MatchString(candidate)
}

func (g *globMatcher) compiled(pattern string) *regexp.Regexp {
	g.mu.RLock()
	re, ok := g.cache[pattern]
	g.mu.RUnlock()
	if ok {
		return re
	}

	re = compileGlob(pattern)
	g.mu.Lock()
	g.cache[pattern] = re
	g.mu.Unlock()
	return re
}

// compileGlob escapes every regex metacharacter except `*`, which becomes
// ".*", and anchors the result. Returns nil when compilation fails.
func compileGlob(pattern string) *regexp.Regexp {
	segments := strings.Split(pattern, "*")
	quoted := make([]string, len(segments))
	for i, segment := range segments {
		quoted[i] = regexp.QuoteMeta(segment)
	}

	re, err := regexp.Compile("(?i)^" + strings.Join(quoted, ".*") + "$")
	if err != nil {
		return nil
	}
	return re
}
