package routechat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/theoremus-urban-solutions/route-chat/api"
	"github.com/theoremus-urban-solutions/route-chat/catalog"
)

const (
	replyGreeting      = "Hello! You can ask me about bus routes in Lucknow."
	replyMissingPlaces = "Please tell me the starting place and destination."
	replyNoRoute       = "No matching bus route found."
)

// routeReply phrases a matched route for the chat transcript.
func routeReply(rt *catalog.Route) string {
	return fmt.Sprintf("Bus %s departs at %s. Duration %d minutes. Stops: %s",
		rt.BusNumber, rt.DepartureTime, rt.DurationMinutes, strings.Join(rt.Stops, " -> "))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeRaw(w http.ResponseWriter, buf []byte) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, api.ErrorResponse{Error: msg})
}
