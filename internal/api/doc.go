// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the internal transformation engine, translating query parameters into
// include selections and resolved nodes into response envelopes.
package api
