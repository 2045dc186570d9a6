/*
Package tracing provides lightweight request tracing.

Each HTTP request and each WebSocket frame gets a span. Trace context
propagates through the X-Trace-ID and X-Span-ID headers and is echoed back
on responses. Finished spans are logged by a buffered collector goroutine
(debug level, or warn when the span carries an error).

# Usage

	tracer := tracing.New("aadios", logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "ws.open")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()
*/
package tracing
