package routechat

import "sync/atomic"

// serviceStats tracks request outcomes for the health endpoint.
type serviceStats struct {
	requests  atomic.Int64
	matches   atomic.Int64
	noMatches atomic.Int64
	cacheHits atomic.Int64
}
