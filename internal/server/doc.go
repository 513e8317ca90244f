// Package server manages the lifecycle of the gateway's listeners: the main
// HTTP API server and the optional Prometheus metrics server. Both are run
// concurrently and shut down gracefully on SIGINT/SIGTERM/SIGQUIT.
package server
