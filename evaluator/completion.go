package evaluator

type completionKind int

const (
	completionNormal completionKind = iota
	completionReturn
	completionBreak
	completionContinue
	completionThrow
)

// completion is the result of executing a statement. Abrupt kinds unwind
// until a construct that handles them: a call for return, a loop, switch or
// labelled statement for break and continue, a try for throw.
type completion struct {
	kind  completionKind
	value Value
	// empty is set when the statement produced no value, such as a
	// declaration; the value of a statement list is that of its last
	// non-empty statement.
	empty bool
	// target is the label of a break or continue.
	target string
	// err describes a throw.
	err *RuntimeError
}

var emptyCompletion = completion{empty: true}

func normalCompletion(v Value) completion {
	return completion{value: v}
}

// updateEmpty gives an empty completion the value v.
func (c completion) updateEmpty(v Value) completion {
	if c.empty {
		c.value = v
		c.empty = false
	}
	return c
}

func (c *completion) uncatchable() bool {
	return c.kind == completionThrow && c.err != nil && c.err.Kind == Interrupted
}

// loopContinues reports whether a loop body completion lets the loop carry
// on: a normal completion, or a continue aimed at this loop.
func loopContinues(c completion, labels []string) bool {
	switch c.kind {
	case completionNormal:
		return true
	case completionContinue:
		if c.target == "" {
			return true
		}
		for _, l := range labels {
			if l == c.target {
				return true
			}
		}
	}
	return false
}

// loopExit converts the completion that ended a loop into the loop's own
// result.
func loopExit(c completion, v Value) completion {
	if c.kind == completionBreak && c.target == "" {
		return normalCompletion(c.updateEmpty(v).value)
	}
	return c.updateEmpty(v)
}
