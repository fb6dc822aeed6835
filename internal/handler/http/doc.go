// Package http implements the inbound HTTP transport of the market proxy.
//
// It exposes route wiring, request handlers, and middleware. Every proxied
// route lives under a configurable prefix and is handled by decoding query
// parameters or the JSON body, delegating to the market service, and
// writing either the upstream document or an {"detail": ...} error body.
// Request tracing, access logging, and response compression are handled
// here before requests reach the service layer.
package http
