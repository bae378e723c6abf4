package intent

// Kind classifies what a chat message is asking for.
type Kind string

const (
	KindGreeting   Kind = "greeting"
	KindRouteQuery Kind = "route_query"
	KindUnknown    Kind = "unknown"
)

// Intent is the structured reading of one chat message. From, To and
// AfterTime are only meaningful for KindRouteQuery and may be empty there
// too; an empty endpoint means the message did not name one.
type Intent struct {
	Kind      Kind
	From      string
	To        string
	AfterTime string
}
