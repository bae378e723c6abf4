// Package matcher picks the best bus route between two normalized
// endpoints. Matching is exact on the endpoint pair; the multi-leg case
// (no direct route) is a plain no-match. Selection over the candidates is
// deterministic: earliest departure, then shortest duration, then bus
// number.
package matcher
