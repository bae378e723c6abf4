/*
Package routechat serves natural-language bus route queries over a static
Lucknow route dataset.

A chat message flows through intent extraction (model-backed with a rule
fallback), location normalization against the catalog's stop names, and
deterministic route matching. The HTTP surface is three endpoints: POST
/api/chat, GET /api/stops and GET /api/health, plus an optional static UI
mount.

	cat, err := catalog.LoadFile("data/bus_routes.csv")
	...
	srv := routechat.NewServer(config.Config, cat)
	srv.Start()
	srv.HandleGracefulShutdown()
*/
package routechat
