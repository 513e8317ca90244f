// Package http implements the HTTP transport layer of the stamp gateway.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as panic recovery, request tracing, access
// logging, and request metrics are handled in this package before requests
// are delegated to the service layer. Every service and adapter failure is
// caught here and mapped to a stable HTTP status plus a JSON error body;
// nothing propagates far enough to crash the process.
package http
