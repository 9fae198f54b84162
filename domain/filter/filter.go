// Package filter implements the textual boolean query language used to
// filter task collections.
//
// A query combines atomic conditions ("p1", "#work", "@urgent",
// "overdue", "search:milk") with !, &, | and parentheses:
//
//	p1 & #work
//	@urgent | (overdue & !assigned)
//	#proj*
//
// The language is case-insensitive and never fails: unrecognized
// conditions degrade to substring search over task content and
// description, unmatched parentheses are treated as literal text, and an
// unparseable comparison date simply makes its condition false.
//
// Known limitation, kept for compatibility with saved filters: there is
// no escaping, so &, | and a leading ! inside a literal value (say a
// label named "a|b") are read as operators.
package filter

import (
	"strings"

	"github.com/hunterjackson/todoer-sub000/domain/task"
)

// Engine evaluates filter queries against task collections. Construct
// with NewEngine; an Engine is safe for concurrent use.
type Engine struct {
	matcher  Matcher
	clock    Clock
	resolver DateResolver
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithMatcher replaces the default memoizing glob matcher.
func WithMatcher(m Matcher) EngineOption {
	return func(e *Engine) {
		e.matcher = m
	}
}

// WithClock replaces the wall clock read by relative-date conditions.
func WithClock(c Clock) EngineOption {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithDateResolver replaces the resolver used by before:/after:
// comparisons.
func WithDateResolver(r DateResolver) EngineOption {
	return func(e *Engine) {
		e.resolver = r
	}
}

// NewEngine creates an Engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		matcher:  NewGlobMatcher(),
		clock:    SystemClock{},
		resolver: LiteralDateResolver{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate returns the tasks matching query, preserving their original
// order. The inputs are never mutated.
//
// An empty (or all-whitespace) query is the identity: the input comes
// back as-is, completed and soft-deleted tasks included. Any non-empty
// query excludes completed and soft-deleted tasks before a single
// condition runs, so negation cannot reintroduce them.
func (e *Engine) Evaluate(tasks []task.Task, query string, ctx Context) []task.Task {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return tasks
	}

	root := parse(normalized)
	ev := &evaluator{
		ctx:      ctx,
		matcher:  e.matcher,
		resolver: e.resolver,
		now:      e.clock.Now(),
	}

	matched := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed() || t.IsDeleted() {
			continue
		}
		if root.eval(ev, t) {
			matched = append(matched, t)
		}
	}
	return matched
}
