package routechat

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status              string `json:"status"`
	UptimeSeconds       int64  `json:"uptime_seconds"`
	Routes              int    `json:"routes"`
	Stops               int    `json:"stops"`
	Requests            int64  `json:"requests"`
	Matches             int64  `json:"matches"`
	NoMatches           int64  `json:"no_matches"`
	CacheHits           int64  `json:"cache_hits"`
	FallbackExtractions int64  `json:"fallback_extractions"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:              "ok",
		UptimeSeconds:       int64(time.Since(s.started).Seconds()),
		Routes:              s.catalog.Len(),
		Stops:               len(s.catalog.StopNames()),
		Requests:            s.stats.requests.Load(),
		Matches:             s.stats.matches.Load(),
		NoMatches:           s.stats.noMatches.Load(),
		CacheHits:           s.stats.cacheHits.Load(),
		FallbackExtractions: s.pipeline.Fallbacks(),
	})
}
