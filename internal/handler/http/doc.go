// Package http implements the HTTP transport layer of the sync server.
//
// It exposes route wiring, request handlers and middleware for the JSON API
// under /api, the prometheus endpoint and the static web clients. Tracing,
// access logging, compression, body limits and bearer authentication are
// handled here before requests reach the service layer.
package http
