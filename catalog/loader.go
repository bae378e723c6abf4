package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/route-chat/utils"
)

// DataError reports a dataset that cannot be served at all: missing file,
// unreadable CSV, missing required columns, or no usable rows.
type DataError struct{ Msg string }

func (e *DataError) Error() string { return e.Msg }

var requiredColumns = []string{
	"route_id", "from_stop", "to_stop", "bus_number",
	"departure_time", "duration_minutes", "stops",
}

// Load parses the route dataset from r and builds the in-memory catalog.
// source names the dataset in logs and errors. Malformed rows are dropped
// and reported once after the load; a dataset with no usable rows fails.
func Load(r io.Reader, source string) (*Catalog, error) {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	csvr.TrimLeadingSpace = true
	rec, err := csvr.ReadAll()
	if err != nil {
		return nil, &DataError{Msg: fmt.Sprintf("unreadable dataset %s: %v", source, err)}
	}
	if len(rec) == 0 {
		return nil, &DataError{Msg: "dataset " + source + " is empty"}
	}

	head := rec[0]
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	cols := map[string]int{}
	for _, c := range requiredColumns {
		i := idx(c)
		if i < 0 {
			return nil, &DataError{Msg: "dataset " + source + " is missing required column " + c}
		}
		cols[c] = i
	}

	warns := newRowWarnings()
	routes := make([]Route, 0, len(rec)-1)
	for i, row := range rec[1:] {
		rt, kind := parseRow(row, cols)
		if kind != "" {
			warns.Add(kind, rowID(row, cols, i+2))
			continue
		}
		routes = append(routes, rt)
	}
	warns.LogAll(source)
	if len(routes) == 0 {
		return nil, &DataError{Msg: "dataset " + source + " has no usable rows"}
	}

	c := newCatalog(routes)
	log.Printf("loaded %d routes from %s (%d stops, %d rows dropped)",
		len(routes), source, len(c.stopNames), warns.Total())
	return c, nil
}

// LoadFile loads the dataset from a local CSV file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataError{Msg: fmt.Sprintf("cannot open dataset %s: %v", path, err)}
	}
	defer func() { _ = f.Close() }()
	return Load(f, path)
}

// parseRow converts one CSV row into a Route. A non-empty second result is
// the warning kind explaining why the row was dropped.
func parseRow(row []string, cols map[string]int) (Route, string) {
	get := func(col string) string {
		i := cols[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rt := Route{
		RouteID:       get("route_id"),
		FromStop:      get("from_stop"),
		ToStop:        get("to_stop"),
		BusNumber:     get("bus_number"),
		DepartureTime: get("departure_time"),
	}
	duration := get("duration_minutes")
	if rt.RouteID == "" || rt.FromStop == "" || rt.ToStop == "" ||
		rt.BusNumber == "" || rt.DepartureTime == "" || duration == "" {
		return Route{}, WarnMissingField
	}

	minutes, err := utils.ClockToMinutes(rt.DepartureTime)
	if err != nil {
		return Route{}, WarnBadDeparture
	}
	rt.DepartureMinutes = minutes

	dur, err := strconv.Atoi(duration)
	if err != nil || dur <= 0 {
		return Route{}, WarnBadDuration
	}
	rt.DurationMinutes = dur

	stops := splitStops(get("stops"))
	if len(stops) == 0 {
		// endpoints are always part of the journey
		stops = []string{rt.FromStop, rt.ToStop}
	}
	rt.Stops = stops
	return rt, ""
}

// splitStops splits the pipe-delimited stops sub-field, dropping blanks.
func splitStops(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// rowID labels a dropped row in warnings: the route_id when present,
// otherwise the 1-based CSV line number.
func rowID(row []string, cols map[string]int, line int) string {
	if i := cols["route_id"]; i < len(row) {
		if id := strings.TrimSpace(row[i]); id != "" {
			return id
		}
	}
	return fmt.Sprintf("line %d", line)
}
