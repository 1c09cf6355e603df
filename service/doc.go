// Package service orchestrates the core components of the
// reconstruction engine: per-market books, mark price, and
// subscription fan-out.
//
// It provides a clean API for feeding order events and querying
// snapshots, decoupled from network transports like gRPC.
package service
