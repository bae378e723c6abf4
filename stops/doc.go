/*
Package stops resolves raw location mentions to canonical stop names.

Resolution runs three steps in order: exact case-insensitive match against
the canonical stop set, alias lookup (whole phrase, then substring inside a
longer phrase), and finally a fuzzy similarity scan. The fuzzy step only
accepts an unambiguous winner above a fixed threshold; a low or tied score
resolves to nothing rather than guessing a wrong stop.

The normalizer is pure: no external calls, no randomness, identical output
for identical input. Build one at startup from the catalog's stop names and
share it across requests.

	norm := stops.NewNormalizer(cat.StopNames(), stops.DefaultAliases(), 0)
	name, ok := norm.Normalize("near the airport")
*/
package stops
