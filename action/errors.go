package action

import "fmt"

// InvariantError reports an action state that could only have been produced
// by a bug in whatever entered or stored the action.
type InvariantError struct {
	Kind      Kind
	Combo     string
	Stage     uint32
	NumStages uint32
	Reason    string
}

func (e *InvariantError) Error() string {
	if e.Combo == "" {
		return fmt.Sprintf("%s: invariant violated: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s %q: invariant violated at stage %d of %d: %s", e.Kind, e.Combo, e.Stage, e.NumStages, e.Reason)
}
