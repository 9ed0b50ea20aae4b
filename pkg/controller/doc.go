// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithMetrics: Records request latency in a Prometheus histogram labelled by route.
//   - WithRateLimit: Throttles requests per remote address.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
//   - GetClientIP: Best-effort originating client address, for logging only.
//   - RemoteIP: Host part of the connection's remote address.
package controller
