// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: colored console output (LOG_DEV=true)
//
// The level can be raised or lowered at runtime with SetLevel. Domain
// packages take a plain *zap.Logger and default to zap.NewNop().
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("Server starting", zap.String("port", "8000"))
//	logger.Error("Failed to open preference store", zap.Error(err))
package logging
