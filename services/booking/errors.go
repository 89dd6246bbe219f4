// File: services/booking/errors.go
package booking

import (
	"fmt"
	"strings"
)

// ValidationError reports which traveler fields are missing. The field
// names are surfaced verbatim so the conversation layer can ask for
// exactly what is absent.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required traveler information: %s", strings.Join(e.Missing, ", "))
}
