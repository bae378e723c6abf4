package routechat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/theoremus-urban-solutions/route-chat/api"
	"github.com/theoremus-urban-solutions/route-chat/intent"
	"github.com/theoremus-urban-solutions/route-chat/utils"
)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	reqID := w.Header().Get("X-Request-ID")
	s.stats.requests.Add(1)

	req, err := decodeChatRequest(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Message == api.OptionsSentinel {
		writeJSON(w, http.StatusOK, s.withOptions(api.ChatResponse{}))
		return
	}

	key := cacheKey("chat", utils.Fold(req.Message))
	if buf, ok := s.cache.Get(key); ok {
		s.stats.cacheHits.Add(1)
		log.Printf("chat %s served from cache", reqID)
		writeRaw(w, buf)
		return
	}

	draft, err := s.pipeline.Extract(r.Context(), req.Message)
	if err != nil {
		// the rule fallback never fails; guard anyway
		draft = intent.Intent{Kind: intent.KindUnknown}
	}

	resp, matched := s.respond(draft)
	buf, err := json.Marshal(resp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not encode the reply.")
		return
	}
	s.cache.Set(key, buf)
	log.Printf("chat %s kind=%s matched=%t", reqID, draft.Kind, matched)
	writeRaw(w, buf)
}

// respond shapes the chat reply for an extracted intent. The second result
// reports whether a route matched.
func (s *Server) respond(draft intent.Intent) (api.ChatResponse, bool) {
	switch draft.Kind {
	case intent.KindGreeting:
		return s.withOptions(api.ChatResponse{Reply: replyGreeting}), false
	case intent.KindRouteQuery:
		if draft.From == "" || draft.To == "" {
			return s.withOptions(api.ChatResponse{Reply: replyMissingPlaces}), false
		}
		res := s.matcher.Match(draft.From, draft.To, draft.AfterTime)
		resp := api.ChatResponse{FromOptions: res.FromOptions, ToOptions: res.ToOptions}
		if res.Route == nil {
			s.stats.noMatches.Add(1)
			resp.Reply = replyNoRoute
			return resp, false
		}
		s.stats.matches.Add(1)
		resp.Reply = routeReply(res.Route)
		resp.Route = res.Route
		return resp, true
	default:
		return s.withOptions(api.ChatResponse{Reply: replyMissingPlaces}), false
	}
}

// withOptions fills the option lists on replies that skip the matcher.
func (s *Server) withOptions(resp api.ChatResponse) api.ChatResponse {
	resp.FromOptions = s.catalog.FromOptions()
	resp.ToOptions = s.catalog.ToOptions()
	return resp
}

func (s *Server) handleStops(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.StopsResponse{
		FromOptions: s.catalog.FromOptions(),
		ToOptions:   s.catalog.ToOptions(),
		Stops:       s.catalog.StopNames(),
	})
}

// Answer runs one message through the full pipeline without HTTP; the CLI
// ask mode uses it. The sentinel and blank messages return bare options.
func (s *Server) Answer(ctx context.Context, message string) api.ChatResponse {
	message = strings.TrimSpace(message)
	if message == "" || message == api.OptionsSentinel {
		return s.withOptions(api.ChatResponse{})
	}
	draft, err := s.pipeline.Extract(ctx, message)
	if err != nil {
		draft = intent.Intent{Kind: intent.KindUnknown}
	}
	resp, _ := s.respond(draft)
	return resp
}
