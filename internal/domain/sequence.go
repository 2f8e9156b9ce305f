package domain

// Step sequencing rules. Every operation returns a fresh slice whose
// sequence numbers are dense 1..n, even when the incoming list was already
// inconsistent. The engine never talks to storage; the editor composes
// these operations client-side and submits the final list atomically.

// Resequence returns a copy of steps renumbered 1..n in list order.
// Resequencing an already-dense list yields identical numbers.
func Resequence(steps []StepSpec) []StepSpec {
	out := make([]StepSpec, len(steps))
	copy(out, steps)
	for i := range out {
		out[i].SequenceNumber = i + 1
	}
	return out
}

// IsDense reports whether the sequence numbers are exactly 1..n in order.
func IsDense(steps []StepSpec) bool {
	for i, step := range steps {
		if step.SequenceNumber != i+1 {
			return false
		}
	}
	return true
}

// AppendStep appends a step at the end with sequence number len+1.
// Duplicate operation names are permitted: the same operation may
// legitimately repeat within a routing.
func AppendStep(steps []StepSpec, step StepSpec) []StepSpec {
	out := make([]StepSpec, len(steps), len(steps)+1)
	copy(out, steps)
	step.SequenceNumber = len(out) + 1
	return append(out, step)
}

// RemoveStepAt removes the step at index i and renumbers the remainder so
// numbering stays dense starting at 1. An out-of-range index is a no-op.
func RemoveStepAt(steps []StepSpec, i int) []StepSpec {
	if i < 0 || i >= len(steps) {
		return Resequence(steps)
	}
	out := make([]StepSpec, 0, len(steps)-1)
	out = append(out, steps[:i]...)
	out = append(out, steps[i+1:]...)
	return Resequence(out)
}

// MoveStepUp swaps the step at index i with its predecessor and renumbers
// the whole list. Moving the first step is silently ignored.
func MoveStepUp(steps []StepSpec, i int) []StepSpec {
	if i <= 0 || i >= len(steps) {
		return Resequence(steps)
	}
	out := make([]StepSpec, len(steps))
	copy(out, steps)
	out[i-1], out[i] = out[i], out[i-1]
	return Resequence(out)
}

// MoveStepDown swaps the step at index i with its successor and renumbers
// the whole list. Moving the last step is silently ignored.
func MoveStepDown(steps []StepSpec, i int) []StepSpec {
	if i < 0 || i >= len(steps)-1 {
		return Resequence(steps)
	}
	out := make([]StepSpec, len(steps))
	copy(out, steps)
	out[i], out[i+1] = out[i+1], out[i]
	return Resequence(out)
}
