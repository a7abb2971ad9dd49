// Package handler is the HTTP layer that sits right after the router.
//
// It binds and validates requests through the validation package, calls
// the matching service operation and turns the returned service.Outcome
// into a response body or an error for the global error handler.
package handler
