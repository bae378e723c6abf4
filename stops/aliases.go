package stops

import "github.com/theoremus-urban-solutions/route-chat/utils"

// DefaultAliases maps informal phrases to stop names as they appear in the
// Lucknow dataset. Entries are folded on use, so any casing works here.
func DefaultAliases() map[string]string {
	return map[string]string{
		"airport":          "amausi airport",
		"amausi":           "amausi airport",
		"station":          "charbagh",
		"railway station":  "charbagh",
		"charbagh station": "charbagh",
		"gomtinagar":       "gomti nagar",
		"gomti nagr":       "gomti nagar",
	}
}

// MergeAliases overlays extra entries onto base and folds both sides.
// Either argument may be nil; the inputs are not modified.
func MergeAliases(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[utils.Fold(k)] = utils.Fold(v)
	}
	for k, v := range extra {
		out[utils.Fold(k)] = utils.Fold(v)
	}
	return out
}
