/*
Package monitoring provides Prometheus-based metrics collection.

# Overview

Tracks HTTP traffic plus the domain pipeline: section generation counts and
latency by type/variant, serialized markup sizes, theme descriptor builds,
and blueprint compilation outcomes.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))

	metrics.RecordGeneration("hero", "split", elapsed)
	metrics.RecordMarkup(len(doc.Markup))

# Metrics Endpoint

Expose via the standard Prometheus handler:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
