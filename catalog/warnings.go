package catalog

import (
	"fmt"
	"log"
	"strings"
)

// Warning kind constants for rows dropped during load.
const (
	WarnMissingField = "missing_field"
	WarnBadDeparture = "bad_departure_time"
	WarnBadDuration  = "bad_duration"
)

// warningInfo accumulates one warning kind across the whole load
type warningInfo struct {
	count    int
	examples []string
}

// rowWarnings collects per-row load problems and logs one consolidated line
// per kind instead of one line per dropped row.
type rowWarnings struct {
	kinds map[string]*warningInfo
}

func newRowWarnings() *rowWarnings {
	return &rowWarnings{kinds: make(map[string]*warningInfo)}
}

// Add records a dropped row with an example identifier (route_id when the
// row has one).
func (w *rowWarnings) Add(kind, exampleID string) {
	if w.kinds[kind] == nil {
		w.kinds[kind] = &warningInfo{examples: make([]string, 0, 3)}
	}

	info := w.kinds[kind]
	info.count++

	// Keep up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Total returns the number of rows dropped across all kinds.
func (w *rowWarnings) Total() int {
	n := 0
	for _, info := range w.kinds {
		n += info.count
	}
	return n
}

// LogAll writes one consolidated line per warning kind.
func (w *rowWarnings) LogAll(source string) {
	for kind, info := range w.kinds {
		log.Printf("%s", w.formatWarningMessage(kind, source, info))
	}
}

func (w *rowWarnings) formatWarningMessage(kind, source string, info *warningInfo) string {
	var description string

	switch kind {
	case WarnMissingField:
		description = "rows with a blank required field"
	case WarnBadDeparture:
		description = "rows whose departure_time is not a valid HH:MM clock value"
	case WarnBadDuration:
		description = "rows whose duration_minutes is not a positive integer"
	default:
		description = "rows with an unknown problem"
	}

	examplesStr := strings.Join(info.examples, ", ")

	return fmt.Sprintf("Dataset %s has %s (%d occurrences). Dropping the rows. Examples: %s",
		source, description, info.count, examplesStr)
}
