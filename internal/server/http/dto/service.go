package dto

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// ServiceInfoResponse describes a service's root endpoint payload.
type ServiceInfoResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse carries a human-readable failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}
