// Package server exposes the agents over HTTP.
//
// HTTP API
//
//	GET /, HEAD /
//	    Dashboard page built from the strategist stats and the builder's
//	    product templates. Never rate limited.
//
//	GET /healthz
//	    {"status":"ok"}. Never rate limited.
//
//	POST /api/strategist
//	    Body is any JSON value; the response is the analysis result. Any
//	    failure while reading, decoding or analysing yields 500
//	    {"error":"Analysis failed"}; the cause is only logged.
//	    Limited to StrategistPerMinute requests per minute per client.
//
//	GET  /api/stats
//	GET  /api/builder/templates
//	POST /api/builder/products      {"type": "prompt_kit"}
//	GET  /api/outreach/dms?type=cold
//	    JSON views of the agents, each limited to DefaultPerHour requests per
//	    hour per client. An unknown product type is still a 200 carrying
//	    {"error":"Product type not found"}. When an API-key digest is
//	    configured the builder and outreach routes require X-API-KEY.
//
// Behaviour
//
//   - Handlers are stateless; agents are read-only after construction.
//   - Clients are keyed by the host part of the connection's remote address.
//   - Rejected requests get 429 {"error":"rate limit exceeded"} and a
//     Retry-After header.
//   - Every response carries X-Request-ID; an access log records method,
//     path, remote, status, bytes and duration for each request.
//   - Panics in handlers are recovered into 500 {"error":"internal server error"}.
package server
