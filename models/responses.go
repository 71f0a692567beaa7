package models

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every non-2xx response.
// Error carries one of the fixed, client-facing messages; internal details
// are never placed here.
type ErrorResponse struct {
	Error string `json:"error"`
}
