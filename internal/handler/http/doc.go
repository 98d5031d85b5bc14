// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, panic recovery and bearer token
// authentication are handled in this package before requests are delegated
// to the service layer. Every failure is answered with the {"message": ...}
// envelope built in errors_mapper.go.
package http
