package models

// Health is the static health-check response. Field layout matches the
// original service for consumer compatibility.
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// Readiness reports whether the service and its optional dependencies can
// take traffic.
type Readiness struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}
