// Package middleware holds the global Echo middleware: request ids,
// request-scoped logging, New Relic tracing, rate limiting, CORS, secure
// headers, panic recovery and the error handler every error funnels into.
package middleware
