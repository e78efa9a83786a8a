// Package telemetry holds the prometheus collectors of the API process and
// the optional OpenTelemetry tracing setup.
//
// Collectors are registered with the default prometheus registry at package
// initialization and exposed by [MetricsHandler].
package telemetry
