package filter

import (
	"time"

	"github.com/hunterjackson/todoer-sub000/domain/task"
)

// node is one vertex of a parsed filter expression. Evaluation walks the
// tree once per task.
type node interface {
	eval(ev *evaluator, t task.Task) bool
}

// evaluator carries per-call evaluation state: the entity context, the
// glob matcher, the date resolver, and "now" captured once so every task
// in the call sees the same day windows.
type evaluator struct {
	ctx      Context
	matcher  Matcher
	resolver DateResolver
	now      time.Time
}

func (n predicateNode) eval(ev *evaluator, t task.Task) bool {
	// the boolean literals stay addressable so saved filters that used
	// them keep working
	switch n.text {
	case "true":
		return true
	case "false":
		return false
	}
	return ev.predicate(n.text, t)
}

func (n notNode) eval(ev *evaluator, t task.Task) bool {
	return !n.inner.eval(ev, t)
}

func (n andNode) eval(ev *evaluator, t task.Task) bool {
	return n.left.eval(ev, t) && n.right.eval(ev, t)
}

func (n orNode) eval(ev *evaluator, t task.Task) bool {
	return n.left.eval(ev, t) || n.right.eval(ev, t)
}

func (n groupNode) eval(ev *evaluator, t task.Task) bool {
	return n.inner.eval(ev, t)
}
