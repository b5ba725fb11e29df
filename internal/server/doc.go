// Package server runs the transport servers of the note sync server.
//
// The HTTP server carries the auth and reconciliation API; the optional gRPC
// server carries the standard health service. Both run in one errgroup: the
// first failure or a stop signal shuts every transport down gracefully.
package server
