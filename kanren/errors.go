package kanren

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/logicgo/kanren/term"
)

// Vars names the logic variables a query wants to observe, keyed by a
// display name. Iterating a map has no stable order, so Solution
// keeps its own sorted key list for deterministic printing (see
// Solution.Names).
type Vars map[string]*term.Var

// unknownNameError is a usage fault: the caller asked a Solution for a
// name it was never constructed with.
type unknownNameError struct {
	name string
}

func (e *unknownNameError) Error() string {
	return fmt.Sprintf("kanren: solution has no variable named %q", e.name)
}

// aggregateUnknownNames collects one unknownNameError per name in
// missing into a single error via go-multierror, so a caller asking a
// Solution for several names at once (Solution.GetAll) gets the
// complete list of usage faults in one report instead of just the
// first.
func aggregateUnknownNames(missing []string) error {
	var result *multierror.Error
	for _, n := range missing {
		result = multierror.Append(result, &unknownNameError{name: n})
	}
	return result.ErrorOrNil()
}
