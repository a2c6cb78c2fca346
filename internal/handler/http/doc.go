// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as bearer authentication, request tracing,
// access logging and response compression are handled in this package
// before requests are delegated to the service layer. Every failure is
// translated to a status code and a {"detail": "..."} body in one place
// (errors_mapper.go).
package http
