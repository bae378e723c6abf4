package intent

import (
	"context"
	"regexp"
	"strings"

	"github.com/theoremus-urban-solutions/route-chat/utils"
)

var greetingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bhi+\b`),
	regexp.MustCompile(`\bhello+\b`),
	regexp.MustCompile(`\bhey+\b`),
	regexp.MustCompile(`\bthanks?\b`),
	regexp.MustCompile(`\bhow are you\b`),
}

// routePatterns are tried in order; the first match wins. The time-bearing
// forms come first so "after HH:MM" is not swallowed into the destination.
var routePatterns = []*regexp.Regexp{
	regexp.MustCompile(`from\s+(?P<from>.+?)\s+to\s+(?P<to>.+?)\s+after\s+(?P<time>\d{1,2}:\d{2})$`),
	regexp.MustCompile(`(?P<from>.+?)\s+to\s+(?P<to>.+?)\s+after\s+(?P<time>\d{1,2}:\d{2})$`),
	regexp.MustCompile(`from\s+(?P<from>.+?)\s+to\s+(?P<to>.+)$`),
	regexp.MustCompile(`(?P<from>.+?)\s+to\s+(?P<to>.+)$`),
}

var (
	nonAlphaPattern    = regexp.MustCompile(`[^a-zA-Z\s]`)
	leadingFromPattern = regexp.MustCompile(`^(bus\s+from\s+|from\s+)`)
	leadingToPattern   = regexp.MustCompile(`^(bus\s+to\s+|to\s+)`)
	clockPattern       = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

// genericPlaces are placeholder words that name no real stop.
var genericPlaces = map[string]bool{
	"here":        true,
	"there":       true,
	"somewhere":   true,
	"anywhere":    true,
	"place":       true,
	"destination": true,
	"source":      true,
}

// RuleExtractor parses messages with the regex grammar alone. Extract
// never returns an error; messages the grammar cannot read come back as
// KindUnknown.
type RuleExtractor struct{}

func NewRuleExtractor() *RuleExtractor { return &RuleExtractor{} }

func (e *RuleExtractor) Extract(_ context.Context, message string) (Intent, error) {
	text := utils.Fold(message)
	if isGreeting(text) {
		return Intent{Kind: KindGreeting}, nil
	}
	if it, ok := extractRoute(text); ok {
		return it, nil
	}
	return Intent{Kind: KindUnknown}, nil
}

// greetings are checked before route parsing, so "hi" inside a travel
// question still greets
func isGreeting(text string) bool {
	for _, p := range greetingPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

func extractRoute(text string) (Intent, bool) {
	for _, p := range routePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		it := Intent{
			Kind: KindRouteQuery,
			From: CleanPlace(m[p.SubexpIndex("from")]),
			To:   CleanPlace(m[p.SubexpIndex("to")]),
		}
		if i := p.SubexpIndex("time"); i >= 0 {
			it.AfterTime = CleanAfterTime(m[i])
		}
		return it, true
	}
	return Intent{}, false
}

// CleanPlace strips punctuation, leading connectives and placeholder words
// from a place mention. It returns "" when nothing usable remains.
func CleanPlace(value string) string {
	cleaned := nonAlphaPattern.ReplaceAllString(value, " ")
	cleaned = utils.Fold(cleaned)
	cleaned = leadingFromPattern.ReplaceAllString(cleaned, "")
	cleaned = leadingToPattern.ReplaceAllString(cleaned, "")
	if genericPlaces[cleaned] {
		return ""
	}
	return cleaned
}

// CleanAfterTime keeps value only when it is a bare HH:MM clock.
func CleanAfterTime(value string) string {
	text := strings.TrimSpace(value)
	if text == "" || !clockPattern.MatchString(text) {
		return ""
	}
	return text
}
