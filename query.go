package routechat

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/theoremus-urban-solutions/route-chat/api"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// maxMessageBytes bounds a chat body; real messages are a sentence or two.
const maxMessageBytes = 4 << 10

// decodeChatRequest reads and validates the chat body. The message comes
// back trimmed, with the options sentinel left intact.
func decodeChatRequest(w http.ResponseWriter, r *http.Request) (api.ChatRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxMessageBytes)
	var req api.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return api.ChatRequest{}, &QueryError{Msg: "Invalid JSON body."}
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return api.ChatRequest{}, &QueryError{Msg: "You must provide a message."}
	}
	return req, nil
}
