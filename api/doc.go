// Package api defines the JSON shapes exchanged over the HTTP surface.
// It holds no behavior so UIs and the CLI can share the types without
// pulling in the server.
package api
