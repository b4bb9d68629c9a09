// Package client is a Go client for the aihustle JSON API.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx responses are returned as *StatusError carrying the
// status code and the server's error message.
package client
