package app

import (
	"fmt"
	"strings"

	"github.com/atomicstack/roster/internal/roster"
)

// IDScheme selects how new record ids are generated.
type IDScheme string

const (
	IDsUUID      IDScheme = "uuid"
	IDsTimestamp IDScheme = "timestamp"
)

// ParseIDScheme validates an id scheme name.
func ParseIDScheme(name string) (IDScheme, error) {
	switch scheme := IDScheme(strings.ToLower(strings.TrimSpace(name))); scheme {
	case IDsUUID, IDsTimestamp:
		return scheme, nil
	default:
		return "", fmt.Errorf("unknown id scheme %q (want uuid or timestamp)", name)
	}
}

// Generator returns the generator for s. Unknown values fall back to uuid.
func (s IDScheme) Generator() roster.IDGenerator {
	if s == IDsTimestamp {
		return roster.NewTimestampIDs()
	}
	return roster.UUIDs()
}
