// Package prometheus provides Prometheus collectors for goShop client metrics.
//
// [NewPrometheusExporter] accepts a [goShop.Client] and exposes an [http.Handler]
// that renders all goShop counters and histograms in Prometheus text exposition format.
// Counter names are prefixed goshop_*_total; the single histogram is
// goshop_request_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate client or session state.
package prometheus
