package internaldefs

import (
	goShop "github.com/MrEthical07/goShop"
)

// CounterDef defines a public type used by goShop APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goShop.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goShop APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goShop.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the storefront client.
var CounterDefs = []CounterDef{
	{ID: goShop.MetricRegisterSuccess, Name: "goshop_register_success_total", Help: "Successful account registrations."},
	{ID: goShop.MetricRegisterFailure, Name: "goshop_register_failure_total", Help: "Failed account registrations."},
	{ID: goShop.MetricLoginSuccess, Name: "goshop_login_success_total", Help: "Successful login exchanges."},
	{ID: goShop.MetricLoginFailure, Name: "goshop_login_failure_total", Help: "Failed login exchanges."},
	{ID: goShop.MetricLogout, Name: "goshop_logout_total", Help: "Logout operations."},
	{ID: goShop.MetricSessionRestored, Name: "goshop_session_restored_total", Help: "Sessions restored from the persistence backend."},
	{ID: goShop.MetricSessionDiscarded, Name: "goshop_session_discarded_total", Help: "Persisted sessions discarded as incomplete or corrupt."},
	{ID: goShop.MetricRequestUnauthorized, Name: "goshop_request_unauthorized_total", Help: "Requests classified Unauthorized."},
	{ID: goShop.MetricRequestForbidden, Name: "goshop_request_forbidden_total", Help: "Requests classified Forbidden."},
	{ID: goShop.MetricRequestNotFound, Name: "goshop_request_not_found_total", Help: "Requests classified NotFound."},
	{ID: goShop.MetricRequestValidation, Name: "goshop_request_validation_total", Help: "Requests classified Validation."},
	{ID: goShop.MetricRequestUnknown, Name: "goshop_request_unknown_total", Help: "Requests classified Unknown, including transport failures."},
	{ID: goShop.MetricProductList, Name: "goshop_product_list_total", Help: "Successful catalog list calls."},
	{ID: goShop.MetricProductGet, Name: "goshop_product_get_total", Help: "Successful single-product reads."},
	{ID: goShop.MetricProductCreate, Name: "goshop_product_create_total", Help: "Successful product creations."},
	{ID: goShop.MetricProductUpdate, Name: "goshop_product_update_total", Help: "Successful product updates."},
	{ID: goShop.MetricProductDelete, Name: "goshop_product_delete_total", Help: "Successful product deletions."},
}

// HistogramDefs is an exported constant or variable used by the storefront client.
var HistogramDefs = []HistogramDef{
	{ID: goShop.MetricRequestLatency, Name: "goshop_request_latency_seconds", Help: "Outbound request latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the storefront client.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the storefront client.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
