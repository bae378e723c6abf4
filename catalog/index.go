package catalog

import (
	"sort"

	"github.com/theoremus-urban-solutions/route-chat/utils"
)

// Catalog holds the loaded route dataset in memory for fast lookups.
// Read-only after construction; safe for concurrent use.
type Catalog struct {
	routes      []Route
	pairIndex   map[string][]int // folded "from|to" -> route indexes
	fromOptions []string         // sorted distinct from_stop values
	toOptions   []string         // sorted distinct to_stop values
	stopNames   []string         // union of endpoints, canonical spelling
}

func newCatalog(routes []Route) *Catalog {
	c := &Catalog{routes: routes, pairIndex: make(map[string][]int)}
	fromSeen := map[string]string{}
	toSeen := map[string]string{}
	allSeen := map[string]string{}
	for i, r := range routes {
		key := pairKey(r.FromStop, r.ToStop)
		c.pairIndex[key] = append(c.pairIndex[key], i)
		addName(fromSeen, r.FromStop)
		addName(toSeen, r.ToStop)
		addName(allSeen, r.FromStop)
		addName(allSeen, r.ToStop)
	}
	c.fromOptions = sortedNames(fromSeen)
	c.toOptions = sortedNames(toSeen)
	c.stopNames = sortedNames(allSeen)
	return c
}

// RoutesMatching returns all routes running exactly from -> to. Endpoint
// comparison is case-insensitive; the returned slice is a copy and may be
// reordered freely by the caller.
func (c *Catalog) RoutesMatching(from, to string) []Route {
	idxs := c.pairIndex[pairKey(from, to)]
	out := make([]Route, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, c.routes[i])
	}
	return out
}

// FromOptions returns the sorted, deduplicated list of origin stops.
func (c *Catalog) FromOptions() []string {
	return append([]string(nil), c.fromOptions...)
}

// ToOptions returns the sorted, deduplicated list of destination stops.
func (c *Catalog) ToOptions() []string {
	return append([]string(nil), c.toOptions...)
}

// StopNames returns every stop appearing as a route endpoint, in canonical
// spelling, sorted.
func (c *Catalog) StopNames() []string {
	return append([]string(nil), c.stopNames...)
}

// Routes returns all loaded routes.
func (c *Catalog) Routes() []Route {
	return append([]Route(nil), c.routes...)
}

// Len returns the number of loaded routes.
func (c *Catalog) Len() int { return len(c.routes) }

func pairKey(from, to string) string {
	return utils.Fold(from) + "|" + utils.Fold(to)
}

// addName records the first-seen spelling of a stop, keyed case-insensitively.
func addName(set map[string]string, name string) {
	key := utils.Fold(name)
	if _, ok := set[key]; !ok {
		set[key] = name
	}
}

func sortedNames(set map[string]string) []string {
	out := make([]string, 0, len(set))
	for _, name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
