/*
Package tracing configures OpenTelemetry spans for keystone.

Tracing is off unless an OTLP endpoint is given. When off, New returns a
noop tracer and every span costs next to nothing.

	tracer, err := tracing.New(tracing.Config{
		Enabled:  true,
		Endpoint: "localhost:4317",
		Insecure: true,
	})
	if err != nil {
		return err
	}
	defer tracer.Shutdown(context.Background())

	ctx, span := tracer.Start(ctx, "config.bootstrap")
	defer span.End()

Sampling is "always", "never" or "ratio" (with SampleRatio between 0 and
1), always wrapped in ParentBased.
*/
package tracing
