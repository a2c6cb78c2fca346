package models

// ErrorResponse is the body of every failed request. Detail is a single
// human-readable string; it never carries stack traces or internal ids.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is returned by the unauthenticated root endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// ReadinessResponse is returned by the readiness probe.
type ReadinessResponse struct {
	Status string `json:"status"`
}
