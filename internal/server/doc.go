// Package server binds the listeners for the HTTP and gRPC handlers and
// drains them once a stop signal arrives.
package server
