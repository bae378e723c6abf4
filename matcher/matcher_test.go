package matcher_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/route-chat/catalog"
	"github.com/theoremus-urban-solutions/route-chat/matcher"
	"github.com/theoremus-urban-solutions/route-chat/stops"
)

const fixtureCSV = `route_id,from_stop,to_stop,bus_number,departure_time,duration_minutes,stops
R1,Gomti Nagar,Amausi Airport,25A,10:30,40,Gomti Nagar|Hazratganj|Alambagh|Amausi Airport
R2,Gomti Nagar,Amausi Airport,12C,09:15,55,Gomti Nagar|Aminabad|Alambagh|Amausi Airport
R3,Charbagh,Hazratganj,7,08:00,35,Charbagh|Hazratganj
R4,Charbagh,Hazratganj,31B,08:00,35,Charbagh|Lalbagh|Hazratganj
R5,Charbagh,Hazratganj,8,08:00,40,Charbagh|Hussainganj|Hazratganj
R6,Aliganj,Telibagh,19,21:40,50,Aliganj|Hazratganj|Telibagh
`

func newTestMatcher(t *testing.T) *matcher.Matcher {
	t.Helper()
	cat, err := catalog.Load(strings.NewReader(fixtureCSV), "fixture")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	norm := stops.NewNormalizer(cat.StopNames(), stops.DefaultAliases(), 0)
	return matcher.New(cat, norm)
}

func TestMatchSelectsEarliestDeparture(t *testing.T) {
	m := newTestMatcher(t)
	res := m.Match("gomti nagar", "amausi airport", "")
	if res.Route == nil {
		t.Fatal("expected a match")
	}
	if res.Route.BusNumber != "12C" {
		t.Errorf("BusNumber = %q, want 12C (earliest departure)", res.Route.BusNumber)
	}
}

func TestMatchResolvesAliasesAndFuzzyNames(t *testing.T) {
	m := newTestMatcher(t)
	res := m.Match("gomtinagar", "near the airport", "10:00")
	if res.Route == nil {
		t.Fatal("expected a match")
	}
	if res.Route.BusNumber != "25A" || res.Route.DepartureTime != "10:30" {
		t.Errorf("got bus %q at %q, want 25A at 10:30", res.Route.BusNumber, res.Route.DepartureTime)
	}
}

func TestMatchTieBreaks(t *testing.T) {
	m := newTestMatcher(t)
	// R3, R4 and R5 all depart 08:00; R5 runs longer, and between the
	// two 35-minute routes bus "31B" sorts before bus "7".
	res := m.Match("charbagh", "hazratganj", "")
	if res.Route == nil {
		t.Fatal("expected a match")
	}
	if res.Route.BusNumber != "31B" {
		t.Errorf("BusNumber = %q, want 31B", res.Route.BusNumber)
	}
	if res.Route.DurationMinutes != 35 {
		t.Errorf("DurationMinutes = %d, want 35", res.Route.DurationMinutes)
	}
}

func TestMatchAfterTime(t *testing.T) {
	m := newTestMatcher(t)
	tests := []struct {
		name      string
		afterTime string
		wantBus   string
	}{
		{"filters earlier departures", "10:00", "25A"},
		{"keeps all when nothing departs later", "22:30", "12C"},
		{"ignored when unparseable", "25:99", "12C"},
		{"ignored when empty", "", "12C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := m.Match("gomti nagar", "amausi airport", tt.afterTime)
			if res.Route == nil {
				t.Fatal("expected a match")
			}
			if res.Route.BusNumber != tt.wantBus {
				t.Errorf("BusNumber = %q, want %q", res.Route.BusNumber, tt.wantBus)
			}
		})
	}
}

func TestMatchNoRoute(t *testing.T) {
	m := newTestMatcher(t)
	tests := []struct {
		name string
		from string
		to   string
	}{
		{"unknown origin", "mars base", "charbagh"},
		{"unknown destination", "charbagh", "mars base"},
		{"no direct route", "aliganj", "amausi airport"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := m.Match(tt.from, tt.to, "")
			if res.Route != nil {
				t.Errorf("Match(%q, %q) found bus %q, want no match", tt.from, tt.to, res.Route.BusNumber)
			}
			if len(res.FromOptions) == 0 || len(res.ToOptions) == 0 {
				t.Error("options must be populated even without a match")
			}
		})
	}
}

func TestMatchOptions(t *testing.T) {
	m := newTestMatcher(t)
	res := m.Match("", "", "")
	wantFrom := []string{"Aliganj", "Charbagh", "Gomti Nagar"}
	wantTo := []string{"Amausi Airport", "Hazratganj", "Telibagh"}
	if !reflect.DeepEqual(res.FromOptions, wantFrom) {
		t.Errorf("FromOptions = %v, want %v", res.FromOptions, wantFrom)
	}
	if !reflect.DeepEqual(res.ToOptions, wantTo) {
		t.Errorf("ToOptions = %v, want %v", res.ToOptions, wantTo)
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	m := newTestMatcher(t)
	first := m.Match("charbagh", "hazratganj", "")
	if first.Route == nil {
		t.Fatal("expected a match")
	}
	for i := 0; i < 30; i++ {
		res := m.Match("charbagh", "hazratganj", "")
		if res.Route == nil || res.Route.BusNumber != first.Route.BusNumber {
			t.Fatalf("iteration %d picked a different route", i)
		}
	}
}
