// Package http implements the HTTP transport layer of the user service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, rate limiting, body size limits, CORS,
// security headers and bearer-token authentication are handled in this
// package before requests are delegated to the service layer.
package http
