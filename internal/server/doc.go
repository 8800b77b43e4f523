// Package server runs HTTP handlers with graceful shutdown.
//
// It is used by the development remote binary, which serves the in-memory
// strings repository for local trials of the client.
package server
