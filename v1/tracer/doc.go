// Package tracer configures OpenTelemetry tracing for services built on sqlcore.
//
// NewClient builds an SDK TracerProvider. With EnableExport set, spans are exported
// over OTLP/HTTP (endpoint taken from the standard OTEL_EXPORTER_OTLP_* variables);
// otherwise spans are recorded locally only.
//
//	tr, err := tracer.NewClient(tracer.Config{ServiceName: "billing", AppEnv: "prod"}, log)
//	if err != nil {
//		return err
//	}
//	defer tr.Shutdown(ctx)
//
//	conn := sqlcore.NewConnectorFromPool(pool, log).WithTracerProvider(tr.TracerProvider())
//
// Every executor operation then runs inside a client span named "sqlcore.<operation>".
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		tracer.FXModule, // Provides *Tracer and trace.TracerProvider
//		fx.Provide(func() tracer.Config { return tracer.Config{ServiceName: "billing"} }),
//	)
//
// The provider is shut down when the application stops.
package tracer
