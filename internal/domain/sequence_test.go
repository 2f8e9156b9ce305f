package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func step(name string, seq int) StepSpec {
	return StepSpec{
		OperationName:  name,
		OperationType:  OperationProcessing,
		SequenceNumber: seq,
		Mandatory:      true,
	}
}

func names(steps []StepSpec) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.OperationName
	}
	return out
}

func TestResequence_IdempotentOnDenseList(t *testing.T) {
	steps := []StepSpec{step("Melt", 1), step("Cast", 2), step("Roll", 3)}
	out := Resequence(steps)
	require.Equal(t, steps, out)
	require.True(t, IsDense(out))
}

func TestResequence_RepairsInconsistentNumbering(t *testing.T) {
	steps := []StepSpec{step("Melt", 4), step("Cast", 4), step("Roll", 0)}
	out := Resequence(steps)
	require.True(t, IsDense(out))
	require.Equal(t, []string{"Melt", "Cast", "Roll"}, names(out))
	// Input list is untouched.
	require.Equal(t, 4, steps[0].SequenceNumber)
}

func TestAppendStep_NumbersFromLength(t *testing.T) {
	steps := AppendStep(nil, step("Melt", 0))
	steps = AppendStep(steps, step("Cast", 0))
	require.True(t, IsDense(steps))
	require.Equal(t, 2, steps[1].SequenceNumber)
}

func TestAppendStep_DuplicateOperationNamesPermitted(t *testing.T) {
	// The same operation may legitimately repeat in a routing.
	steps := AppendStep(nil, step("Inspect", 0))
	steps = AppendStep(steps, step("Inspect", 0))
	require.Len(t, steps, 2)
	require.True(t, IsDense(steps))
}

func TestRemoveStepAt(t *testing.T) {
	steps := []StepSpec{step("Melt", 1), step("Cast", 2), step("Roll", 3)}

	out := RemoveStepAt(steps, 1)
	require.Equal(t, []string{"Melt", "Roll"}, names(out))
	require.True(t, IsDense(out))

	// Out-of-range indices are no-ops.
	require.Len(t, RemoveStepAt(steps, -1), 3)
	require.Len(t, RemoveStepAt(steps, 3), 3)
}

func TestMoveStepDown_FirstStep(t *testing.T) {
	// Spec example: [Melt(1), Cast(2)], moveDown(0) → [Cast(1), Melt(2)].
	steps := []StepSpec{step("Melt", 1), step("Cast", 2)}
	out := MoveStepDown(steps, 0)
	require.Equal(t, []string{"Cast", "Melt"}, names(out))
	require.Equal(t, 1, out[0].SequenceNumber)
	require.Equal(t, 2, out[1].SequenceNumber)
}

func TestMoveBoundaries_SilentlyIgnored(t *testing.T) {
	steps := []StepSpec{step("Melt", 1), step("Cast", 2)}

	up := MoveStepUp(steps, 0)
	require.Equal(t, []string{"Melt", "Cast"}, names(up))

	down := MoveStepDown(steps, 1)
	require.Equal(t, []string{"Melt", "Cast"}, names(down))

	require.True(t, IsDense(up))
	require.True(t, IsDense(down))
}

func TestMoveStepUp(t *testing.T) {
	steps := []StepSpec{step("Melt", 1), step("Cast", 2), step("Roll", 3)}
	out := MoveStepUp(steps, 2)
	require.Equal(t, []string{"Melt", "Roll", "Cast"}, names(out))
	require.True(t, IsDense(out))
}

// TestSequence_DenseUnderRandomOperations exercises the dense-sequencing
// property: any mix of append/remove/move keeps numbering at exactly 1..n.
func TestSequence_DenseUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var steps []StepSpec

	for i := 0; i < 500; i++ {
		switch rng.Intn(4) {
		case 0:
			steps = AppendStep(steps, step("Op", 0))
		case 1:
			steps = RemoveStepAt(steps, rng.Intn(len(steps)+1)-1)
		case 2:
			steps = MoveStepUp(steps, rng.Intn(len(steps)+1)-1)
		case 3:
			steps = MoveStepDown(steps, rng.Intn(len(steps)+1)-1)
		}
		require.True(t, IsDense(steps), "iteration %d: sequence not dense: %+v", i, steps)
	}
}
