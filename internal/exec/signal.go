package exec

// Signal propagates return/break/continue out of a nested block back up
// to the statement runner that can act on it (spec.md section 4.4:
// "produce sentinel control signals propagated up through nested block
// executions").
type Signal int

const (
	SigNone Signal = iota
	SigReturn
	SigBreak
	SigContinue
)
