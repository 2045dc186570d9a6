/*
Package monitoring provides Prometheus metrics for the desktop service.

Metrics live on a private registry so tests can build as many collectors as
they need. One Metrics value implements the recorder interfaces of the
desktop controller, the session manager and the preference service.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	sessions := session.NewManager(reg, prefs, cfg).WithMetrics(metrics)
*/
package monitoring
