// Package http binds the request dispatcher to net/http.
//
// Every request passes through panic recovery, trace id propagation, access
// logging, a request deadline and gzip handling, and is then copied into a
// [handler.Request]. Routing, authorization and error mapping are left to
// the dispatcher.
package http
