package matcher

import (
	"sort"

	"github.com/theoremus-urban-solutions/route-chat/catalog"
	"github.com/theoremus-urban-solutions/route-chat/stops"
	"github.com/theoremus-urban-solutions/route-chat/utils"
)

// Result is the outcome of one endpoint query. Route is nil when nothing
// matched. The option lists are always populated so callers can tell the
// user which stops the dataset actually serves.
type Result struct {
	Route       *catalog.Route
	FromOptions []string
	ToOptions   []string
}

// Matcher answers endpoint queries over a loaded catalog.
type Matcher struct {
	catalog    *catalog.Catalog
	normalizer *stops.Normalizer
}

func New(cat *catalog.Catalog, norm *stops.Normalizer) *Matcher {
	return &Matcher{catalog: cat, normalizer: norm}
}

// Match normalizes both endpoints and selects the single best route
// between them. afterTime is advisory: it filters out earlier departures
// when it parses as a clock and at least one departure survives, and is
// ignored otherwise.
func (m *Matcher) Match(fromRaw, toRaw, afterTime string) Result {
	res := Result{
		FromOptions: m.catalog.FromOptions(),
		ToOptions:   m.catalog.ToOptions(),
	}

	from, okFrom := m.normalizer.Normalize(fromRaw)
	to, okTo := m.normalizer.Normalize(toRaw)
	if !okFrom || !okTo {
		return res
	}

	routes := m.catalog.RoutesMatching(from, to)
	if len(routes) == 0 {
		return res
	}

	if afterTime != "" {
		if minutes, err := utils.ClockToMinutes(afterTime); err == nil {
			later := make([]catalog.Route, 0, len(routes))
			for _, r := range routes {
				if r.DepartureMinutes >= minutes {
					later = append(later, r)
				}
			}
			if len(later) > 0 {
				routes = later
			}
		}
	}

	// stable so rows identical on every key keep dataset order
	sort.SliceStable(routes, func(i, j int) bool { return lessRoute(routes[i], routes[j]) })
	best := routes[0]
	res.Route = &best
	return res
}

// lessRoute orders candidates by earliest departure, then shortest
// duration, then bus number, then route id.
func lessRoute(a, b catalog.Route) bool {
	if a.DepartureMinutes != b.DepartureMinutes {
		return a.DepartureMinutes < b.DepartureMinutes
	}
	if a.DurationMinutes != b.DurationMinutes {
		return a.DurationMinutes < b.DurationMinutes
	}
	if a.BusNumber != b.BusNumber {
		return a.BusNumber < b.BusNumber
	}
	return a.RouteID < b.RouteID
}
