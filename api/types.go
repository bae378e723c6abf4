package api

import "github.com/theoremus-urban-solutions/route-chat/catalog"

// OptionsSentinel is a reserved chat message asking for the stop options
// instead of an answer. UIs send it once at startup to populate pickers.
const OptionsSentinel = "__OPTIONS__"

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse answers POST /api/chat. Route is null unless a route
// matched; the option lists are populated on every reply so a client can
// always re-prompt with valid stops.
type ChatResponse struct {
	Reply       string         `json:"reply"`
	Route       *catalog.Route `json:"route"`
	FromOptions []string       `json:"from_options"`
	ToOptions   []string       `json:"to_options"`
}

// StopsResponse answers GET /api/stops.
type StopsResponse struct {
	FromOptions []string `json:"from_options"`
	ToOptions   []string `json:"to_options"`
	Stops       []string `json:"stops"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
