// Package logger provides structured logging for the sqlcore components.
//
// The package wraps Uber's zap behind a small map-based API. Every method takes a
// message, an optional error and optional field maps:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		EnableTracing: true,
//		ServiceName:   "billing",
//	})
//
//	log.Info("Pool created", nil, map[string]interface{}{
//		"capacity": 5,
//	})
//
//	log.ErrorWithContext(ctx, "Error executing query", err, map[string]interface{}{
//		"statement": "SELECT * FROM users",
//	})
//
// # Tracing Integration
//
// When EnableTracing is set, the *WithContext methods add the trace_id and span_id of
// the OpenTelemetry span carried by the context.
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule, // Provides *LoggerClient and logger.Logger
//		fx.Provide(func() logger.Config {
//			return logger.Config{Level: logger.Debug}
//		}),
//	)
//
// # Configuration
//
//	ZAP_LOGGER_LEVEL=debug          # debug, info, warning, error
//	LOGGER_ENABLE_TRACING=true      # add trace/span IDs to context-aware entries
//	LOGGER_SERVICE_NAME=billing     # value of the "service" field
//
// # Thread Safety
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
