package gateway

import "strings"

// Status is the provider-independent payment status.
type Status string

const (
	StatusApproved Status = "APPROVED"
	StatusPending  Status = "PENDING"
	StatusRejected Status = "REJECTED"
	StatusUnknown  Status = "UNKNOWN"
)

type vocabulary map[string]Status

var vocabularies = map[Name]vocabulary{
	Epayco: {
		"approved":      StatusApproved,
		"aceptada":      StatusApproved,
		"pending":       StatusPending,
		"pendiente":     StatusPending,
		"en validacion": StatusPending,
		"rejected":      StatusRejected,
		"rechazada":     StatusRejected,
		"fallida":       StatusRejected,
		"cancelada":     StatusRejected,
	},
	MercadoPago: {
		"approved":     StatusApproved,
		"authorized":   StatusPending,
		"pending":      StatusPending,
		"in_process":   StatusPending,
		"in_mediation": StatusPending,
		"rejected":     StatusRejected,
		"cancelled":    StatusRejected,
		"refunded":     StatusRejected,
		"charged_back": StatusRejected,
	},
	Wompi: {
		"approved": StatusApproved,
		"pending":  StatusPending,
		"declined": StatusRejected,
		"voided":   StatusRejected,
		"error":    StatusRejected,
	},
}

// merged is the union of every provider vocabulary. No raw status maps to
// different canonical statuses across providers.
var merged = func() vocabulary {
	all := vocabulary{}
	for _, v := range vocabularies {
		for raw, st := range v {
			all[raw] = st
		}
	}
	return all
}()

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Canonical maps a raw status from any provider. It is total: anything
// unrecognised is StatusUnknown.
func Canonical(raw string) Status {
	if st, ok := merged[normalize(raw)]; ok {
		return st
	}
	return StatusUnknown
}

// CanonicalFor maps raw using only the named provider's vocabulary, falling
// back to Canonical for providers without one.
func CanonicalFor(name Name, raw string) Status {
	v, ok := vocabularies[name]
	if !ok {
		return Canonical(raw)
	}
	if st, ok := v[normalize(raw)]; ok {
		return st
	}
	return StatusUnknown
}
