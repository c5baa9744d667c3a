package roster

import (
	"errors"
	"strings"
)

// ValidationNotice is the message shown when a submit is rejected.
const ValidationNotice = "Please fill in all fields"

// ValidationError reports the required fields left empty on submit.
type ValidationError struct {
	Missing []Field
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = f.String()
	}
	return "missing required fields: " + strings.Join(names, ", ")
}

// ErrIDExhausted is returned when the generator keeps producing ids that are
// already taken.
var ErrIDExhausted = errors.New("unable to allocate a unique record id")
