package config

// MetricsConfig controls the Prometheus scrape server and optional OTLP push.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

// loadMetrics lets the [metrics] file section set defaults that the OTEL_* and
// METRICS_* variables override. Telemetry is on unless disabled in either place.
func loadMetrics(file fileConfig) MetricsConfig {
	enabled := true
	if file.Metrics.Enabled != nil {
		enabled = *file.Metrics.Enabled
	}
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, enabled),
		Port:         envOrDefault(envMetricsPort, firstNonEmpty(file.Metrics.Port, defaultMetricsPort)),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, file.Metrics.OtlpEndpoint),
		ServiceName:  envOrDefault(envOtelService, firstNonEmpty(file.Metrics.ServiceName, defaultServiceName)),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}
