// Package server wires the desktop service together.
//
// Server Lifecycle:
//  1. Build the app catalogue (built-ins plus CATALOG_DIR files)
//  2. Open the preference store behind a circuit breaker
//  3. Create the session manager
//  4. Setup HTTP routes, the WebSocket stream and middleware
//  5. Serve until Shutdown, then close sessions and the store
//
// Middleware order: recovery, tracing, metrics, CORS, rate limiting.
// Responses are gzipped except on /stream.
//
// Example Usage:
//
//	srv, err := server.New(ctx, cfg, logger)
//	if err != nil {
//	    return err
//	}
//	go srv.Run()
//	defer srv.Shutdown(ctx)
package server
