// Package otel provides OpenTelemetry metric exporter bindings for goShop counters and
// histograms.
//
// [NewOTelExporter] registers Int64ObservableCounter instruments for each goShop metric
// and Int64ObservableGauge per histogram bucket. A single callback reads
// [goShop.Client.MetricsSnapshot] on each collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider — callers supply the Meter.
//   - Mutate client or session state.
package otel
