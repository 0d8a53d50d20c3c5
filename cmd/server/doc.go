// Package main is the entry point for the blockforge server.
//
// The service converts semantic section descriptions into editor block
// markup and theme descriptors, exposed over a small REST surface.
//
// The server provides:
//   - Section and page markup generation
//   - Theme descriptor building
//   - Rate limiting, CORS, Prometheus metrics
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8090
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
