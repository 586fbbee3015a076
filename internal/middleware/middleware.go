// Package middleware holds the global and route-level Echo middleware:
// request ids, request-scoped logging, New Relic tracing, CORS, rate
// limiting, admin session checks and the global error handler.
package middleware
