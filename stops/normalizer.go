package stops

import (
	"sort"
	"strings"

	"github.com/theoremus-urban-solutions/route-chat/utils"
)

// DefaultThreshold is the fuzzy acceptance threshold used when none is
// configured.
const DefaultThreshold = 0.6

// Normalizer resolves raw location mentions to canonical stop names.
// Read-only after construction; safe for concurrent use.
type Normalizer struct {
	canonical map[string]string // folded name -> canonical spelling
	folded    []string          // folded names, sorted
	aliases   map[string]string // folded phrase -> folded stop name
	aliasKeys []string          // alias phrases, longest first
	threshold float64
}

// NewNormalizer builds a normalizer over the canonical stop set. aliases
// may be nil; threshold <= 0 selects DefaultThreshold.
func NewNormalizer(canonical []string, aliases map[string]string, threshold float64) *Normalizer {
	n := &Normalizer{
		canonical: make(map[string]string, len(canonical)),
		aliases:   make(map[string]string, len(aliases)),
		threshold: threshold,
	}
	if n.threshold <= 0 {
		n.threshold = DefaultThreshold
	}
	for _, name := range canonical {
		f := utils.Fold(name)
		if f == "" {
			continue
		}
		if _, ok := n.canonical[f]; !ok {
			n.canonical[f] = name
			n.folded = append(n.folded, f)
		}
	}
	sort.Strings(n.folded)
	for k, v := range aliases {
		n.aliases[utils.Fold(k)] = utils.Fold(v)
	}
	n.aliasKeys = make([]string, 0, len(n.aliases))
	for k := range n.aliases {
		n.aliasKeys = append(n.aliasKeys, k)
	}
	// longest phrase first so "railway station" wins over "station" in
	// substring scans
	sort.Slice(n.aliasKeys, func(i, j int) bool {
		if len(n.aliasKeys[i]) != len(n.aliasKeys[j]) {
			return len(n.aliasKeys[i]) > len(n.aliasKeys[j])
		}
		return n.aliasKeys[i] < n.aliasKeys[j]
	})
	return n
}

// Threshold returns the fuzzy acceptance threshold in effect.
func (n *Normalizer) Threshold() float64 { return n.threshold }

// Normalize maps raw user text to a canonical stop name. Resolution order:
// exact case-insensitive match, alias lookup (whole phrase, then phrase
// contained in longer input), fuzzy similarity. The second result is false
// when nothing resolves unambiguously.
func (n *Normalizer) Normalize(raw string) (string, bool) {
	text := utils.Fold(raw)
	if text == "" {
		return "", false
	}
	if name, ok := n.canonical[text]; ok {
		return name, true
	}
	if target, ok := n.aliases[text]; ok {
		if name, ok := n.lookup(target); ok {
			return name, true
		}
	}
	for _, key := range n.aliasKeys {
		if containsPhrase(text, key) {
			if name, ok := n.lookup(n.aliases[key]); ok {
				return name, true
			}
		}
	}
	folded, _, ok := BestMatch(text, n.folded, n.threshold)
	if !ok {
		return "", false
	}
	return n.canonical[folded], true
}

// lookup resolves a folded name (typically an alias target) against the
// canonical set, falling back to fuzzy matching so alias targets survive
// dataset spelling drift.
func (n *Normalizer) lookup(folded string) (string, bool) {
	if name, ok := n.canonical[folded]; ok {
		return name, true
	}
	best, _, ok := BestMatch(folded, n.folded, n.threshold)
	if !ok {
		return "", false
	}
	return n.canonical[best], true
}

// containsPhrase reports whether phrase occurs in text on word boundaries,
// so "station" matches "the station please" but not "stationary".
func containsPhrase(text, phrase string) bool {
	idx := strings.Index(text, phrase)
	for idx >= 0 {
		before := idx == 0 || text[idx-1] == ' '
		end := idx + len(phrase)
		after := end == len(text) || text[end] == ' '
		if before && after {
			return true
		}
		next := strings.Index(text[idx+1:], phrase)
		if next < 0 {
			break
		}
		idx += 1 + next
	}
	return false
}
